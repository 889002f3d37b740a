package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

func TestRasterize(t *testing.T) {
	img, err := Rasterize([]byte(square), 16)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	r, g, b, a := img.At(8, 8).RGBA()
	assert.EqualValues(t, 0xffff, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.EqualValues(t, 0xffff, a)
}

func TestRasterizeErrors(t *testing.T) {
	_, err := Rasterize([]byte(square), 0)
	assert.ErrorIs(t, err, ErrSize)

	_, err = Rasterize([]byte("<svg><g></svg>"), 8)
	assert.Error(t, err)
}
