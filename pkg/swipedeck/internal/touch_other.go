//go:build !linux

package internal

import "errors"

// StartTouchReader is only supported on Linux; elsewhere SDL touch events
// cover touch input.
func StartTouchReader(path string) error {
	return errors.New("evdev touchscreens are only supported on linux")
}

func StopTouchReader() {}
