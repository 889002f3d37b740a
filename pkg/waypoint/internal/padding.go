package internal

// Padding is space kept clear around an element, per side.
type Padding struct {
	Top, Right, Bottom, Left int32
}

// UniformPadding pads every side by v.
func UniformPadding(v int32) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricPadding pads top and bottom by vertical, left and right by horizontal.
func SymmetricPadding(vertical, horizontal int32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Outset grows r by p, the inverse of Rect.Inset.
func (p Padding) Outset(r Rect) Rect {
	return Rect{
		X: r.X - p.Left,
		Y: r.Y - p.Top,
		W: r.W + p.Left + p.Right,
		H: r.H + p.Top + p.Bottom,
	}
}
