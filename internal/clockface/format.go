// Package clockface lays out and renders the clock text onto a paletted
// canvas sized for the panel.
package clockface

import (
	"math"
	"time"

	strftime "github.com/ncruces/go-strftime"
)

// DefaultLayout prints date, weekday and time on three lines.
const DefaultLayout = "%Y/%m/%d\n%A\n%H:%M"

// Format renders t with a strftime layout.
func Format(t time.Time, layout string) string {
	return strftime.Format(layout, t)
}

// UntilNextMinute returns the time left until the seconds of t roll over to
// zero. It is always in (0, 1m].
func UntilNextMinute(t time.Time) time.Duration {
	into := time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
	return time.Minute - into
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}
