package input

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/link"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav/navtest"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
)

func TestMapKey(t *testing.T) {
	cases := map[evdev.EvCode]constants.VirtualButton{
		evdev.KEY_UP:        constants.VirtualButtonUp,
		evdev.BTN_DPAD_DOWN: constants.VirtualButtonDown,
		evdev.KEY_ENTER:     constants.VirtualButtonA,
		evdev.BTN_SOUTH:     constants.VirtualButtonA,
		evdev.BTN_EAST:      constants.VirtualButtonB,
		evdev.KEY_ESC:       constants.VirtualButtonB,
		evdev.KEY_Q:         constants.VirtualButtonUnassigned,
	}
	for code, want := range cases {
		assert.Equal(t, want, MapKey(code), "code %d", code)
	}
}

func TestTranslate(t *testing.T) {
	ev, ok := Translate(evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_DOWN, Value: 1})
	require.True(t, ok)
	assert.Equal(t, Event{Button: constants.VirtualButtonDown, Pressed: true}, ev)

	ev, ok = Translate(evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_DOWN, Value: 0})
	require.True(t, ok)
	assert.False(t, ev.Pressed)

	_, ok = Translate(evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_DOWN, Value: 2})
	assert.False(t, ok, "autorepeat is dropped")

	_, ok = Translate(evdev.InputEvent{Type: evdev.EV_SYN, Code: 0, Value: 0})
	assert.False(t, ok)

	_, ok = Translate(evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_Q, Value: 1})
	assert.False(t, ok)
}

func TestReaderClosesDeviceOnce(t *testing.T) {
	closes := 0
	r := &Reader{
		path:   "/dev/input/event0",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		closeDevice: func() error {
			closes++
			return errors.New("bad file descriptor")
		},
	}

	first := r.Close()
	second := r.Close()

	assert.Equal(t, 1, closes)
	assert.EqualError(t, first, "bad file descriptor")
	assert.Equal(t, first, second)
}

func TestReaderCloseConcurrent(t *testing.T) {
	closes := 0
	r := &Reader{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		closeDevice: func() error { closes++; return nil },
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Close())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, closes)
}

func renderLinks(f *nav.Facade, names ...string) []*link.Pressable {
	out := make([]*link.Pressable, 0, len(names))
	for _, name := range names {
		out = append(out, link.New[struct{}]().Render(f, link.Props[struct{}]{
			RouteName: name,
			Children:  link.Label(name),
		}))
	}
	return out
}

func press(b constants.VirtualButton) Event   { return Event{Button: b, Pressed: true} }
func release(b constants.VirtualButton) Event { return Event{Button: b, Pressed: false} }

func TestFocusWraps(t *testing.T) {
	f := NewFocus()
	f.SetLinks(renderLinks(nav.Bind(&navtest.Recorder{}, nil), "A", "B", "C"))

	assert.Equal(t, 0, f.Index())
	f.Handle(press(constants.VirtualButtonUp))
	assert.Equal(t, 2, f.Index())
	f.Handle(release(constants.VirtualButtonUp))

	f.Handle(press(constants.VirtualButtonDown))
	f.Handle(release(constants.VirtualButtonDown))
	assert.Equal(t, 0, f.Index())

	f.Handle(press(constants.VirtualButtonRight))
	assert.Equal(t, 1, f.Index())
}

func TestFocusEmpty(t *testing.T) {
	f := NewFocus()
	assert.Equal(t, -1, f.Index())
	assert.Nil(t, f.Current())

	pressed, err := f.Handle(press(constants.VirtualButtonA))
	assert.False(t, pressed)
	assert.NoError(t, err)
}

func TestActivatePressesOnce(t *testing.T) {
	host := &navtest.Recorder{}
	f := NewFocus()
	f.SetLinks(renderLinks(nav.Bind(host, nil), "Home", "Profile"))
	f.Handle(press(constants.VirtualButtonDown))

	pressed, err := f.Handle(press(constants.VirtualButtonA))
	require.NoError(t, err)
	assert.True(t, pressed)

	pressed, _ = f.Handle(release(constants.VirtualButtonA))
	assert.False(t, pressed, "release does not press")

	require.Len(t, host.Calls, 1)
	assert.Equal(t, route.Flat{Name: "Profile"}, host.Last().Request)
	assert.EqualValues(t, 1, f.Current().OnPress.Presses())
}

func TestActivateSkipsDisabled(t *testing.T) {
	host := &navtest.Recorder{}
	el := link.New[struct{}]().Render(nav.Bind(host, nil), link.Props[struct{}]{
		RouteName: "Locked",
		Children:  link.Label("Locked"),
		Pressable: link.PressableProps{Disabled: true},
	})

	f := NewFocus()
	f.SetLinks([]*link.Pressable{el})
	pressed, err := f.Activate()

	assert.False(t, pressed)
	assert.NoError(t, err)
	assert.Empty(t, host.Calls)
}

func TestSetLinksClampsFocus(t *testing.T) {
	facade := nav.Bind(&navtest.Recorder{}, nil)
	f := NewFocus()
	f.SetLinks(renderLinks(facade, "A", "B", "C"))
	f.Handle(press(constants.VirtualButtonUp))
	require.Equal(t, 2, f.Index())

	f.SetLinks(renderLinks(facade, "A"))
	assert.Equal(t, 0, f.Index())
}

func TestHeldDirectionRepeats(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	f := NewFocusWithRepeat(internal.NewDirectionalInputWithTiming(100*time.Millisecond, 10*time.Millisecond, clock))
	f.SetLinks(renderLinks(nav.Bind(&navtest.Recorder{}, nil), "A", "B", "C", "D"))

	f.Handle(press(constants.VirtualButtonDown))
	assert.Equal(t, 1, f.Index())

	f.Tick()
	assert.Equal(t, 1, f.Index(), "no repeat before the delay")

	now = now.Add(100 * time.Millisecond)
	f.Tick()
	assert.Equal(t, 2, f.Index())

	now = now.Add(10 * time.Millisecond)
	f.Tick()
	assert.Equal(t, 3, f.Index())

	f.Handle(release(constants.VirtualButtonDown))
	now = now.Add(time.Second)
	f.Tick()
	assert.Equal(t, 3, f.Index())
}
