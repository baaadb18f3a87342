package asset

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const tokensPerLine = 8

type encoder struct {
	w io.Writer
	b bytes.Buffer
}

func (e *encoder) encode(a *Asset) error {
	fmt.Fprintf(&e.b, "const uint8_t %s_map[] = {\n", a.Name)

	e.b.WriteString("  /* Colors */\n")
	for i, c := range a.Palette {
		fmt.Fprintf(&e.b, "  0x%02X,0x%02X,0x%02X,0x%02X, /* index %d */\n", c.R, c.G, c.B, c.A, i)
	}

	// One line per image row
	e.b.WriteString("  /* Pixel indices */\n")
	row := make([]string, a.Width)
	for y := 0; y < a.Height; y++ {
		for x := range row {
			row[x] = strconv.Itoa(int(a.ColorIndexAt(x, y)))
		}
		e.b.WriteString("  " + strings.Join(row, ", ") + ",\n")
	}

	e.b.WriteString("};\n")

	_, err := e.w.Write(e.b.Bytes())
	return err
}

// Encode writes the asset a to w as a C array literal.
func Encode(w io.Writer, a *Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}

	e := encoder{w: w}

	return e.encode(a)
}

// EncodeDescriptor writes the lv_img_dsc_t descriptor that points at the
// array written by Encode.
func EncodeDescriptor(w io.Writer, a *Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, `const lv_img_dsc_t %[1]s = {
  .header.cf = LV_IMG_CF_INDEXED_8BIT,
  .header.always_zero = 0,
  .header.reserved = 0,
  .header.w = %[2]d,
  .header.h = %[3]d,
  .data_size = %[4]d,
  .data = %[1]s_map,
};
`, a.Name, a.Width, a.Height, a.Len())
	return err
}

// FormatBody lays out tokens as the body of an array literal; a newline,
// then lines of eight comma separated tokens indented by two spaces, each
// line ending with a comma, then a final newline.
func FormatBody(tokens []string) string {
	lines := make([]string, 0, (len(tokens)+tokensPerLine-1)/tokensPerLine)
	for i := 0; i < len(tokens); i += tokensPerLine {
		j := i + tokensPerLine
		if j > len(tokens) {
			j = len(tokens)
		}
		lines = append(lines, "  "+strings.Join(tokens[i:j], ", ")+",")
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// HexToken formats b as a lowercase two digit hex literal.
func HexToken(b uint8) string {
	return fmt.Sprintf("0x%02x", b)
}
