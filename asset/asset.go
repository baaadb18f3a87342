/*
Package asset implements the LVGL indexed color image array as emitted in C
source.

An asset is written as a flat uint8_t array; the palette comes first with
four bytes per entry in R, G, B, A order, followed by one byte per pixel
holding an index into that palette. Index 0 is conventionally transparent.
There is no header or compression so the array is always exactly
4*len(palette) + width*height bytes long.
*/
package asset

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
)

const (
	bytesPerColor = 4
	// LVGL image headers store each dimension in 11 bits
	maxSize = 1<<11 - 1
)

// MaxColors is the largest palette a one byte index can address.
const MaxColors = 256

var (
	errBadName    = errors.New("asset: invalid C identifier")
	errBadSize    = errors.New("asset: invalid dimensions")
	errBadPixels  = errors.New("asset: pixel buffer does not match dimensions")
	errBadPalette = errors.New("asset: invalid palette index")
	errTooMany    = errors.New("asset: too many palette entries")
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Asset is an indexed bitmap with a small RGBA palette.
type Asset struct {
	Name    string
	Width   int
	Height  int
	Palette []color.NRGBA
	Pix     []uint8
}

// New returns an asset with every pixel set to palette index 0.
func New(name string, width, height int, palette []color.NRGBA) *Asset {
	var pix []uint8
	if width > 0 && width <= maxSize && height > 0 && height <= maxSize {
		pix = make([]uint8, width*height)
	}
	return &Asset{
		Name:    name,
		Width:   width,
		Height:  height,
		Palette: append([]color.NRGBA(nil), palette...),
		Pix:     pix,
	}
}

func (a *Asset) in(x, y int) bool {
	return x >= 0 && x < a.Width && y >= 0 && y < a.Height && y < len(a.Pix)/a.Width
}

// ColorIndexAt returns the palette index of the pixel at (x, y).
func (a *Asset) ColorIndexAt(x, y int) uint8 {
	if !a.in(x, y) {
		return 0
	}
	return a.Pix[y*a.Width+x]
}

// SetColorIndex sets the palette index of the pixel at (x, y). Writes
// outside the bitmap are ignored.
func (a *Asset) SetColorIndex(x, y int, index uint8) {
	if !a.in(x, y) {
		return
	}
	a.Pix[y*a.Width+x] = index
}

// Len returns the number of bytes in the serialized array.
func (a *Asset) Len() int {
	return len(a.Palette)*bytesPerColor + len(a.Pix)
}

// Validate checks the asset can be serialized as a valid array.
func (a *Asset) Validate() error {
	if !identifier.MatchString(a.Name) {
		return fmt.Errorf("%w: %q", errBadName, a.Name)
	}
	if a.Width <= 0 || a.Width > maxSize || a.Height <= 0 || a.Height > maxSize {
		return fmt.Errorf("%w: %dx%d", errBadSize, a.Width, a.Height)
	}
	if len(a.Pix) != a.Width*a.Height {
		return errBadPixels
	}
	if len(a.Palette) > MaxColors {
		return errTooMany
	}
	for _, p := range a.Pix {
		if int(p) >= len(a.Palette) {
			return fmt.Errorf("%w: %d", errBadPalette, p)
		}
	}
	return nil
}

// MarshalBinary returns the palette bytes followed by the pixel indices
func (a *Asset) MarshalBinary() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, a.Len())
	for _, c := range a.Palette {
		b = append(b, c.R, c.G, c.B, c.A)
	}
	return append(b, a.Pix...), nil
}
