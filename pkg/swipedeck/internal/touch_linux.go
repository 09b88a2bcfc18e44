//go:build linux

package internal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

type touchReader struct {
	device  *evdev.InputDevice
	min     int32
	max     int32
	running *atomic.Bool
	done    sync.WaitGroup
}

var activeTouchReader *touchReader

// StartTouchReader reads a touchscreen from an evdev device node on its own
// goroutine. Only vertical position and contact are used.
func StartTouchReader(path string) error {
	if activeTouchReader != nil {
		return nil
	}

	device, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	infos, err := device.AbsInfos()
	if err != nil {
		device.Close()
		return fmt.Errorf("read axis ranges: %w", err)
	}

	axis, ok := infos[evdev.ABS_MT_POSITION_Y]
	if !ok {
		axis, ok = infos[evdev.ABS_Y]
	}
	if !ok || axis.Maximum <= axis.Minimum {
		device.Close()
		return fmt.Errorf("%s reports no vertical axis", path)
	}

	r := &touchReader{
		device:  device,
		min:     axis.Minimum,
		max:     axis.Maximum,
		running: atomic.NewBool(true),
	}

	name, _ := device.Name()
	GetInternalLogger().Info("Touchscreen opened", "device", path, "name", name, "min", r.min, "max", r.max)

	r.done.Add(1)
	go r.loop()

	activeTouchReader = r
	return nil
}

// StopTouchReader closes the device, unblocking and ending the reader.
func StopTouchReader() {
	r := activeTouchReader
	if r == nil {
		return
	}
	activeTouchReader = nil

	r.running.Store(false)
	r.device.Close()
	r.done.Wait()
}

func (r *touchReader) loop() {
	defer r.done.Done()

	var (
		down, wasDown bool
		y             int32
		dirty         bool
	)

	for r.running.Load() {
		ev, err := r.device.ReadOne()
		if err != nil {
			if r.running.Load() && !errors.Is(err, os.ErrClosed) {
				GetInternalLogger().Error("Touchscreen read failed", "error", err)
			}
			return
		}

		switch ev.Type {
		case evdev.EV_KEY:
			if ev.Code == evdev.BTN_TOUCH {
				down = ev.Value != 0
				dirty = true
			}
		case evdev.EV_ABS:
			switch ev.Code {
			case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
				y = ev.Value
				dirty = true
			case evdev.ABS_MT_TRACKING_ID:
				down = ev.Value >= 0
				dirty = true
			}
		case evdev.EV_SYN:
			if ev.Code != evdev.SYN_REPORT || !dirty {
				continue
			}
			dirty = false
			if !down && !wasDown {
				continue
			}
			postTouchSample(TouchSample{
				Down:    down,
				Y:       r.normalise(y),
				Changed: down != wasDown,
			})
			wasDown = down
		}
	}
}

func (r *touchReader) normalise(v int32) float64 {
	return float64(v-r.min) / float64(r.max-r.min)
}
