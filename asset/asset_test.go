package asset

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoColors = []color.NRGBA{
	{0x00, 0x00, 0x00, 0x00},
	{0xff, 0xff, 0xff, 0xff},
}

func TestNew(t *testing.T) {
	a := New("dot", 16, 16, twoColors)

	assert.Len(t, a.Pix, 256)
	assert.Equal(t, 8+256, a.Len())
	for _, p := range a.Pix {
		assert.Equal(t, uint8(0), p)
	}
	assert.NoError(t, a.Validate())
}

func TestNewCopiesPalette(t *testing.T) {
	p := append([]color.NRGBA(nil), twoColors...)
	a := New("dot", 1, 1, p)
	p[0] = color.NRGBA{1, 2, 3, 4}

	assert.Equal(t, twoColors[0], a.Palette[0])
}

func TestColorIndex(t *testing.T) {
	a := New("dot", 4, 3, twoColors)

	a.SetColorIndex(2, 1, 1)
	assert.Equal(t, uint8(1), a.ColorIndexAt(2, 1))
	assert.Equal(t, uint8(1), a.Pix[1*4+2])

	// Out of bounds is ignored
	a.SetColorIndex(4, 0, 1)
	a.SetColorIndex(0, -1, 1)
	a.SetColorIndex(0, 3, 1)
	assert.Equal(t, uint8(0), a.ColorIndexAt(4, 0))
	assert.Equal(t, uint8(0), a.ColorIndexAt(-1, -1))

	n := 0
	for _, p := range a.Pix {
		n += int(p)
	}
	assert.Equal(t, 1, n)
}

func TestNewOversized(t *testing.T) {
	a := New("dot", 1<<32, 1<<32, twoColors)
	assert.Empty(t, a.Pix)

	// Nothing to write to so this must not panic
	a.SetColorIndex(0, 0, 1)
	assert.Equal(t, uint8(0), a.ColorIndexAt(0, 0))

	a = New("dot", maxSize, maxSize, twoColors)
	assert.Len(t, a.Pix, maxSize*maxSize)
	assert.NoError(t, a.Validate())
}

func TestValidate(t *testing.T) {
	tables := map[string]struct {
		asset *Asset
		err   error
	}{
		"name": {
			asset: New("1dot", 1, 1, twoColors),
			err:   errBadName,
		},
		"empty name": {
			asset: New("", 1, 1, twoColors),
			err:   errBadName,
		},
		"width": {
			asset: New("dot", 0, 1, twoColors),
			err:   errBadSize,
		},
		"height": {
			asset: New("dot", 1, -1, twoColors),
			err:   errBadSize,
		},
		"pixels": {
			asset: &Asset{Name: "dot", Width: 2, Height: 2, Palette: twoColors, Pix: []uint8{0, 0, 0}},
			err:   errBadPixels,
		},
		"index": {
			asset: &Asset{Name: "dot", Width: 2, Height: 1, Palette: twoColors, Pix: []uint8{0, 2}},
			err:   errBadPalette,
		},
		"too many": {
			asset: New("dot", 1, 1, make([]color.NRGBA, 257)),
			err:   errTooMany,
		},
		"too wide": {
			asset: New("dot", 2048, 1, twoColors),
			err:   errBadSize,
		},
		"overflow": {
			asset: New("dot", 1<<32, 1<<32, twoColors),
			err:   errBadSize,
		},
		"overflow with empty pixels": {
			asset: &Asset{Name: "dot", Width: 1 << 32, Height: 1 << 32, Palette: twoColors},
			err:   errBadSize,
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, table.asset.Validate(), table.err)
		})
	}
}

func TestMarshalBinary(t *testing.T) {
	a := New("dot", 3, 2, twoColors)
	a.SetColorIndex(1, 1, 1)

	b, err := a.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
		0, 0, 0,
		0, 1, 0,
	}, b)
	assert.Len(t, b, a.Len())

	_, err = New("", 1, 1, twoColors).MarshalBinary()
	assert.Error(t, err)
}
