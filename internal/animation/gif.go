// Package animation encodes frame sequences as animated images.
package animation

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/ivlev/img2gif/internal/system"
)

var ErrNoFrames = errors.New("no frames to encode")

// GIFEncoder writes animated GIFs.
//
// Every frame is fitted to the bounds of the first frame, keeping its aspect
// ratio on a white background, and then reduced to Palette with Drawer.
type GIFEncoder struct {
	// Palette is the colour table of every frame. Nil selects the
	// Plan 9 palette.
	Palette color.Palette
	// Drawer quantizes frames to the palette. Nil selects
	// Floyd-Steinberg error diffusion.
	Drawer draw.Drawer
}

// Encode writes frames to w. delays holds the display time of each frame in
// milliseconds and loop is the repeat count, with 0 repeating forever.
func (e *GIFEncoder) Encode(w io.Writer, frames []image.Image, delays []int, loop int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if len(frames) != len(delays) {
		return fmt.Errorf("mismatched frame count and delay count: %d != %d", len(frames), len(delays))
	}
	if loop < 0 {
		return fmt.Errorf("invalid loop count: %d", loop)
	}

	pal := e.Palette
	if pal == nil {
		pal = palette.Plan9
	}
	drawer := e.Drawer
	if drawer == nil {
		drawer = draw.FloydSteinberg
	}

	b := frames[0].Bounds()
	rect := image.Rect(0, 0, b.Dx(), b.Dy())
	if rect.Empty() {
		return fmt.Errorf("first frame is empty: %v", b)
	}

	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: loop,
	}
	for i, frame := range frames {
		canvas := system.GetImage(rect)
		draw.Draw(canvas, rect, image.White, image.Point{}, draw.Src)
		src := frame.Bounds()
		if src.Dx() == rect.Dx() && src.Dy() == rect.Dy() {
			draw.Draw(canvas, rect, frame, src.Min, draw.Over)
		} else {
			draw.CatmullRom.Scale(canvas, Fit(rect, src), frame, src, draw.Over, nil)
		}

		p := image.NewPaletted(rect, pal)
		drawer.Draw(p, rect, canvas, image.Point{})
		system.PutImage(canvas)

		g.Image[i] = p
		g.Delay[i] = Centiseconds(delays[i])
	}
	return gif.EncodeAll(w, g)
}

// Centiseconds converts a duration in milliseconds to the GIF delay unit,
// rounding to the nearest unit and never going below one.
func Centiseconds(ms int) int {
	cs := (ms + 5) / 10
	if cs < 1 {
		return 1
	}
	return cs
}

// Fit returns the largest rectangle centred in dst with the aspect ratio of src.
func Fit(dst, src image.Rectangle) image.Rectangle {
	w, h := dst.Dx(), dst.Dy()
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}
	switch {
	case sw*h > sh*w:
		fh := sh * w / sw
		off := (h - fh) / 2
		return image.Rect(0, off, w, off+fh).Add(dst.Min)
	case sw*h < sh*w:
		fw := sw * h / sh
		off := (w - fw) / 2
		return image.Rect(off, 0, off+fw, h).Add(dst.Min)
	default:
		return dst
	}
}
