package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
)

var (
	// ErrNoMap is returned when the source holds no map array declaration.
	ErrNoMap = errors.New("asset: no map array found")
	// ErrShortMap is returned when a map has too few bytes to hold its
	// palette.
	ErrShortMap = errors.New("asset: map too short to hold the palette")
)

var (
	mapPattern = regexp.MustCompile(`(?s)uint8_t\s+(\w+)_map\s*\[\]\s*=\s*\{(.*?)\};`)
	hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]{1,2}`)
)

// Map is a "uint8_t <name>_map[] = { ... };" declaration found in C source.
type Map struct {
	// Name excludes the _map suffix
	Name   string
	// Tokens are the hex byte literals between the braces exactly as
	// written in the source, in order
	Tokens []string

	start, end int
}

// FindMaps returns every map declaration in src in source order.
func FindMaps(src []byte) []*Map {
	var maps []*Map
	for _, loc := range mapPattern.FindAllSubmatchIndex(src, -1) {
		maps = append(maps, newMap(src, loc))
	}
	return maps
}

func newMap(src []byte, loc []int) *Map {
	m := &Map{
		Name:  string(src[loc[2]:loc[3]]),
		start: loc[4],
		end:   loc[5],
	}
	for _, tok := range hexPattern.FindAll(src[m.start:m.end], -1) {
		m.Tokens = append(m.Tokens, string(tok))
	}
	return m
}

// FindMap returns the first map declaration in src.
func FindMap(src []byte) (*Map, error) {
	loc := mapPattern.FindSubmatchIndex(src)
	if loc == nil {
		return nil, ErrNoMap
	}
	return newMap(src, loc), nil
}

func parseToken(tok string) (uint8, error) {
	v, err := strconv.ParseUint(tok[2:], 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// Bytes returns the value of each token.
func (m *Map) Bytes() []byte {
	b := make([]byte, len(m.Tokens))
	for i, tok := range m.Tokens {
		// Tokens only ever match the hex pattern so this can't fail
		b[i], _ = parseToken(tok)
	}
	return b
}

// Palette splits the map into its first colors RGBA palette entries and the
// remaining pixel tokens, which are returned untouched.
func (m *Map) Palette(colors int) ([]color.NRGBA, []string, error) {
	if colors <= 0 || colors > len(m.Tokens)/bytesPerColor {
		return nil, nil, fmt.Errorf("%w: %s_map has %d bytes, too few for %d colors", ErrShortMap, m.Name, len(m.Tokens), colors)
	}
	n := colors * bytesPerColor

	b := m.Bytes()
	palette := make([]color.NRGBA, colors)
	for i := range palette {
		c := b[i*bytesPerColor:]
		palette[i] = color.NRGBA{c[0], c[1], c[2], c[3]}
	}

	return palette, append([]string(nil), m.Tokens[n:]...), nil
}

// Rewrite returns a copy of src with the body of each map replaced by the
// text returned from fn. The maps must come from FindMaps(src) or be a
// subset of them in the same order.
func Rewrite(src []byte, maps []*Map, fn func(*Map) (string, error)) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(len(src))

	offset := 0
	for _, m := range maps {
		if m.start < offset {
			return nil, errors.New("asset: maps out of order")
		}
		body, err := fn(m)
		if err != nil {
			return nil, err
		}
		b.Write(src[offset:m.start])
		b.WriteString(body)
		offset = m.end
	}
	b.Write(src[offset:])

	return b.Bytes(), nil
}
