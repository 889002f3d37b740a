package input

import (
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/link"
)

// Focus is a focus ring over the links of one screen. Up and Left move
// back, Down and Right move forward, both wrapping. A presses the focused
// link unless its pressable is disabled.
type Focus struct {
	links       []*link.Pressable
	index       int
	directional internal.DirectionalInput
}

func NewFocus() *Focus {
	return &Focus{directional: internal.NewDirectionalInput()}
}

// NewFocusWithRepeat uses the given repeat tracker for held directions.
func NewFocusWithRepeat(d internal.DirectionalInput) *Focus {
	return &Focus{directional: d}
}

// SetLinks replaces the ring's contents after a render. The focused index
// is kept when still in range.
func (f *Focus) SetLinks(links []*link.Pressable) {
	f.links = links
	if f.index >= len(links) {
		f.index = 0
	}
}

// Links returns the links in focus order.
func (f *Focus) Links() []*link.Pressable {
	return f.links
}

// Index returns the focused position, or -1 when there are no links.
func (f *Focus) Index() int {
	if len(f.links) == 0 {
		return -1
	}
	return f.index
}

// Current returns the focused link, or nil.
func (f *Focus) Current() *link.Pressable {
	if len(f.links) == 0 {
		return nil
	}
	return f.links[f.index]
}

// Handle applies one event. It reports whether a link was pressed and
// returns the navigation error from that press, if any.
func (f *Focus) Handle(ev Event) (bool, error) {
	if internal.IsDirection(ev.Button) {
		f.directional.SetHeld(ev.Button, ev.Pressed)
		if ev.Pressed {
			f.move(ev.Button)
		}
		return false, nil
	}

	if ev.Button == constants.VirtualButtonA && ev.Pressed {
		return f.Activate()
	}
	return false, nil
}

// Tick moves focus again if a direction has been held long enough. Call it
// once per frame.
func (f *Focus) Tick() {
	if button := f.directional.Update(); button != constants.VirtualButtonUnassigned {
		f.move(button)
	}
}

// Activate presses the focused link once.
func (f *Focus) Activate() (bool, error) {
	current := f.Current()
	if current == nil || current.Props.Disabled || current.OnPress == nil {
		return false, nil
	}
	return true, current.OnPress.Press()
}

// Reset clears focus and any held direction, used when the screen changes.
func (f *Focus) Reset() {
	f.index = 0
	f.directional.Reset()
}

func (f *Focus) move(button constants.VirtualButton) {
	n := len(f.links)
	if n == 0 {
		return
	}

	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonLeft:
		f.index = (f.index - 1 + n) % n
	case constants.VirtualButtonDown, constants.VirtualButtonRight:
		f.index = (f.index + 1) % n
	}
}
