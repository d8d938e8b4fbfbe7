//go:build !tinygo && !cgo

package hal

import "errors"

func openWindow(_ Options) (Panel, error) {
	return nil, errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
