//go:build !linux && !tinygo

package hal

import (
	"context"
	"fmt"
	"runtime"
)

func openInky(_ context.Context, _ Options) (Panel, error) {
	return nil, fmt.Errorf("%w: inky needs linux, running on %s", ErrNoDisplay, runtime.GOOS)
}
