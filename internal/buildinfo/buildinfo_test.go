package buildinfo

import (
	"strings"
	"testing"
)

func TestShortPrefersVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := Short(); got != "v1.2.3" {
		t.Fatalf("Short() = %q, want v1.2.3", got)
	}
	if got := String(); !strings.HasPrefix(got, "v1.2.3 (commit ") {
		t.Fatalf("String() = %q", got)
	}
}

func TestShortNeverEmpty(t *testing.T) {
	if Short() == "" {
		t.Fatal("Short() is empty")
	}
	for _, s := range []string{version(), commit(), date()} {
		if s == "" {
			t.Fatal("empty build field")
		}
	}
}
