package lvimg

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/bodgit/lvimg/asset"
)

const banner = "// ---------- auto-generated dot frames ----------"

// ErrDotOutOfBounds is returned when a frame's lit pixel lies outside it.
var ErrDotOutOfBounds = errors.New("lvimg: dot outside frame")

// Frame describes a bitmap with a single lit pixel at (X, Y).
type Frame struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
}

// DefaultFrames are the two animation frames used by the widget.
var DefaultFrames = []Frame{
	{Name: "bongo_cat_left1", Width: 16, Height: 16, X: 2, Y: 2},
	{Name: "bongo_cat_right1", Width: 16, Height: 16, X: 13, Y: 13},
}

// Index 0 is transparent, index 1 is opaque white
var dotPalette = []color.NRGBA{
	{0x00, 0x00, 0x00, 0x00},
	{0xff, 0xff, 0xff, 0xff},
}

// DotAsset returns the two color asset for f.
func DotAsset(f Frame) (*asset.Asset, error) {
	a := asset.New(f.Name, f.Width, f.Height, dotPalette)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if f.X < 0 || f.X >= f.Width || f.Y < 0 || f.Y >= f.Height {
		return nil, fmt.Errorf("%w: %s (%d, %d)", ErrDotOutOfBounds, f.Name, f.X, f.Y)
	}
	a.SetColorIndex(f.X, f.Y, 1)
	return a, nil
}

// FrameOptions controls the output of GenerateFrames.
type FrameOptions struct {
	// Descriptors adds an lv_img_dsc_t for each frame
	Descriptors bool
}

// GenerateFrames writes C source for frames to w; each frame's array, an
// optional descriptor and a forward declaration.
func (l *LVImg) GenerateFrames(w io.Writer, frames []Frame, opts FrameOptions) error {
	assets := make([]*asset.Asset, 0, len(frames))
	for _, f := range frames {
		a, err := DotAsset(f)
		if err != nil {
			return err
		}
		l.logger.Printf("Generating %s, %dx%d with dot at (%d, %d)\n", f.Name, f.Width, f.Height, f.X, f.Y)
		assets = append(assets, a)
	}

	if _, err := fmt.Fprintf(w, "%s\n\n#include <lvgl.h>\n\n", banner); err != nil {
		return err
	}

	for _, a := range assets {
		if err := asset.Encode(w, a); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if opts.Descriptors {
		for _, a := range assets {
			if err := asset.EncodeDescriptor(w, a); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}

	for _, a := range assets {
		if _, err := fmt.Fprintf(w, "LV_IMG_DECLARE(%s);\n", a.Name); err != nil {
			return err
		}
	}

	return nil
}
