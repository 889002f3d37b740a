package internal

import (
	"time"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
)

// DirectionalInput tracks a held direction button and decides when it
// should repeat. Embed it in controllers so holding up or down keeps moving
// focus at a steady rate.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond, time.Now)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing and clock.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
		now:            now,
	}
}

// IsDirection reports whether button is one of the four directions.
func IsDirection(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// SetHeld records a press or release. Returns true if the button was a direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !IsDirection(button) {
		return false
	}

	switch {
	case held:
		d.held = button
		d.hasRepeated = false
		d.lastRepeatTime = d.now()
	case d.held == button:
		d.held = constants.VirtualButtonUnassigned
		d.hasRepeated = false
	}
	return true
}

// Held returns the direction currently held, or VirtualButtonUnassigned.
func (d *DirectionalInput) Held() constants.VirtualButton {
	return d.held
}

// Update checks if a repeat should fire. Call it every frame. The first
// repeat comes after the delay, later ones after the interval.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if d.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.held
	}
	return constants.VirtualButtonUnassigned
}

// Reset clears the held direction.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
