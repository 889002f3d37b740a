package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
)

func TestInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}.Inset(Padding{Top: 5, Right: 10, Bottom: 5, Left: 20})
	assert.Equal(t, Rect{X: 20, Y: 5, W: 70, H: 40}, r)

	assert.Equal(t, Rect{X: 60, Y: 60, W: 0, H: 0}, Rect{W: 100, H: 100}.Inset(UniformPadding(60)))
}

func TestStackVertical(t *testing.T) {
	area := Rect{W: 200, H: 400}
	sizes := []Size{{W: 100, H: 30}, {W: 40, H: 20}, {W: 500, H: 10}}

	left := StackVertical(area, UniformPadding(10), 5, constants.TextAlignLeft, sizes)
	assert.Equal(t, []Rect{
		{X: 10, Y: 10, W: 100, H: 30},
		{X: 10, Y: 45, W: 40, H: 20},
		{X: 10, Y: 70, W: 180, H: 10},
	}, left)

	center := StackVertical(area, UniformPadding(10), 5, constants.TextAlignCenter, sizes)
	assert.Equal(t, int32(50), center[0].X)
	assert.Equal(t, int32(80), center[1].X)

	right := StackVertical(area, UniformPadding(10), 5, constants.TextAlignRight, sizes)
	assert.Equal(t, int32(90), right[0].X)
	assert.Equal(t, int32(10), right[2].X)
}

func TestRow(t *testing.T) {
	assert.Equal(t, Size{}, Row(8))
	assert.Equal(t, Size{W: 40, H: 20}, Row(8, Size{W: 16, H: 16}, Size{W: 16, H: 20}))
}

func TestOutsetInvertsInset(t *testing.T) {
	p := SymmetricPadding(4, 8)
	r := Rect{X: 20, Y: 30, W: 100, H: 40}

	assert.Equal(t, Rect{X: 12, Y: 26, W: 116, H: 48}, p.Outset(r))
	assert.Equal(t, r, p.Outset(r).Inset(p))
}
