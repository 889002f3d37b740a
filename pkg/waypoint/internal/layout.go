package internal

import "github.com/waypoint-nav/waypoint/pkg/waypoint/constants"

// Rect is a placed element, in window pixels.
type Rect struct {
	X, Y, W, H int32
}

// Size is a measured element.
type Size struct {
	W, H int32
}

// Inset shrinks r by p. Sides never go negative.
func (r Rect) Inset(p Padding) Rect {
	out := Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// StackVertical places sizes top to bottom inside area after padding,
// separated by spacing and aligned horizontally per align. Items wider than
// the area are clipped to it.
func StackVertical(area Rect, pad Padding, spacing int32, align constants.TextAlign, sizes []Size) []Rect {
	inner := area.Inset(pad)
	out := make([]Rect, len(sizes))

	y := inner.Y
	for i, s := range sizes {
		w := min(s.W, inner.W)
		out[i] = Rect{X: AlignX(inner, w, align), Y: y, W: w, H: s.H}
		y += s.H + spacing
	}
	return out
}

// AlignX returns the left edge of an element w wide aligned inside area.
func AlignX(area Rect, w int32, align constants.TextAlign) int32 {
	switch align {
	case constants.TextAlignCenter:
		return area.X + (area.W-w)/2
	case constants.TextAlignRight:
		return area.X + area.W - w
	}
	return area.X
}

// Row measures nodes laid side by side with gap between them.
func Row(gap int32, sizes ...Size) Size {
	var out Size
	for i, s := range sizes {
		if i > 0 {
			out.W += gap
		}
		out.W += s.W
		out.H = max(out.H, s.H)
	}
	return out
}
