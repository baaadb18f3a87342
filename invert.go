package lvimg

import (
	"errors"
	"fmt"
	"image/color"
	"io/ioutil"
	"os"

	"github.com/bodgit/lvimg/asset"
)

// DefaultColors is the number of palette entries assumed at the start of
// each map, enough for a two color image.
const DefaultColors = 2

var (
	errSameFile   = errors.New("lvimg: output would overwrite input")
	errBadPalette = fmt.Errorf("lvimg: palette size must be between 1 and %d", asset.MaxColors)
)

// InvertOptions controls how Invert rewrites a source file.
type InvertOptions struct {
	// Colors is the number of palette entries, DefaultColors if zero
	Colors int
	// All inverts every map in the file rather than only the first
	All bool
}

// ValidColors checks n is a usable number of palette entries.
func ValidColors(n int) error {
	if n <= 0 || n > asset.MaxColors {
		return errBadPalette
	}
	return nil
}

func isRGB(c color.NRGBA, v uint8) bool {
	return c.R == v && c.G == v && c.B == v
}

// InvertColor swaps black and white; white becomes fully transparent and
// black becomes white keeping its alpha. Any other color is unchanged.
func InvertColor(c color.NRGBA) color.NRGBA {
	switch {
	case isRGB(c, 0xff):
		return color.NRGBA{0, 0, 0, 0}
	case isRGB(c, 0x00):
		return color.NRGBA{0xff, 0xff, 0xff, c.A}
	default:
		return c
	}
}

// InvertPalette returns a copy of p with InvertColor applied to each entry.
func InvertPalette(p []color.NRGBA) []color.NRGBA {
	out := make([]color.NRGBA, len(p))
	for i, c := range p {
		out[i] = InvertColor(c)
	}
	return out
}

func (l *LVImg) invertMap(m *asset.Map, colors int) (string, error) {
	palette, pixels, err := m.Palette(colors)
	if err != nil {
		return "", err
	}

	tokens := make([]string, 0, len(m.Tokens))
	for i, c := range InvertPalette(palette) {
		if c != palette[i] {
			l.logger.Printf("%s_map: color %d %v -> %v\n", m.Name, i, palette[i], c)
		}
		tokens = append(tokens, asset.HexToken(c.R), asset.HexToken(c.G), asset.HexToken(c.B), asset.HexToken(c.A))
	}
	// Pixel indices are copied as written
	tokens = append(tokens, pixels...)

	return asset.FormatBody(tokens), nil
}

// Invert swaps black and white in the palette of the first map found in
// src, or every map if opts.All is set, and returns the rewritten source.
// Text outside the map bodies is preserved.
func (l *LVImg) Invert(src []byte, opts InvertOptions) ([]byte, error) {
	colors := opts.Colors
	if colors == 0 {
		colors = DefaultColors
	}
	if err := ValidColors(colors); err != nil {
		return nil, err
	}

	var maps []*asset.Map
	if opts.All {
		maps = asset.FindMaps(src)
		if len(maps) == 0 {
			return nil, asset.ErrNoMap
		}
	} else {
		m, err := asset.FindMap(src)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}

	return asset.Rewrite(src, maps, func(m *asset.Map) (string, error) {
		l.logger.Printf("Inverting %s_map, %d bytes\n", m.Name, len(m.Tokens))
		return l.invertMap(m, colors)
	})
}

// InvertFile reads the C source in, inverts it and writes the result to
// out. The input is never modified and nothing is written on failure.
func (l *LVImg) InvertFile(in, out string, opts InvertOptions) error {
	inInfo, err := os.Stat(in)
	if err != nil {
		return err
	}
	// Catches symlinks and hard links as well as the same path
	switch outInfo, err := os.Stat(out); {
	case err == nil && os.SameFile(inInfo, outInfo):
		return errSameFile
	case err != nil && !os.IsNotExist(err):
		return err
	}

	src, err := ioutil.ReadFile(in)
	if err != nil {
		return err
	}

	b, err := l.Invert(src, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	return ioutil.WriteFile(out, b, 0644)
}
