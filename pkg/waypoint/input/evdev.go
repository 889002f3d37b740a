// Package input turns raw input into link activations: an evdev reader for
// handhelds without SDL controller mappings, and a focus ring that moves
// between rendered links and presses the focused one.
package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
)

// Event is a virtual button transition.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

var keyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:         constants.VirtualButtonUp,
	evdev.KEY_DOWN:       constants.VirtualButtonDown,
	evdev.KEY_LEFT:       constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:      constants.VirtualButtonRight,
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,

	evdev.KEY_ENTER:     constants.VirtualButtonA,
	evdev.KEY_SPACE:     constants.VirtualButtonA,
	evdev.BTN_SOUTH:     constants.VirtualButtonA,
	evdev.KEY_ESC:       constants.VirtualButtonB,
	evdev.KEY_BACKSPACE: constants.VirtualButtonB,
	evdev.BTN_EAST:      constants.VirtualButtonB,
	evdev.BTN_START:     constants.VirtualButtonStart,
	evdev.BTN_MODE:      constants.VirtualButtonMenu,
}

// MapKey returns the virtual button for an evdev key code, or
// VirtualButtonUnassigned when the code is not mapped.
func MapKey(code evdev.EvCode) constants.VirtualButton {
	if vb, ok := keyMap[code]; ok {
		return vb
	}
	return constants.VirtualButtonUnassigned
}

// Translate converts a raw event. Key repeats (value 2) and non-key events
// are dropped; repeat is handled by the focus ring itself.
func Translate(ev evdev.InputEvent) (Event, bool) {
	if ev.Type != evdev.EV_KEY || ev.Value > 1 {
		return Event{}, false
	}

	vb := MapKey(ev.Code)
	if vb == constants.VirtualButtonUnassigned {
		return Event{}, false
	}
	return Event{Button: vb, Pressed: ev.Value == 1}, true
}

// Reader reads button events from one evdev device.
type Reader struct {
	path   string
	dev    *evdev.InputDevice
	logger *slog.Logger

	closeDevice func() error
	closeOnce   sync.Once
	closeErr    error
}

// Open opens the device at path. An empty path falls back to the
// WAYPOINT_INPUT_DEVICE environment variable.
func Open(path string) (*Reader, error) {
	if path == "" {
		path = os.Getenv(constants.InputDeviceEnvVar)
	}
	if path == "" {
		return nil, errors.New("input: no device path")
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}

	logger := internal.GetNavLogger()
	if name, err := dev.Name(); err == nil {
		logger.Debug("Opened input device", "path", path, "name", name)
	}

	return &Reader{path: path, dev: dev, logger: logger, closeDevice: dev.Close}, nil
}

// Run forwards translated events to out until ctx is done or the device
// fails. Cancelling ctx closes the device to unblock the pending read.
func (r *Reader) Run(ctx context.Context, out chan<- Event) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			r.Close()
		case <-done:
		}
	}()

	for {
		raw, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("input: read %s: %w", r.path, err)
		}

		ev, ok := Translate(*raw)
		if !ok {
			continue
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases the device. Only the first call closes it; later calls,
// including the one Run makes on cancellation, return the same result.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.closeDevice()
		r.logger.Debug("Closed input device", "path", r.path, "error", r.closeErr)
	})
	return r.closeErr
}
