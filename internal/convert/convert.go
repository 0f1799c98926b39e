// Package convert normalizes input frames to PNG files.
package convert

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// Rasterizer renders a vector file to a PNG file at a resolution.
type Rasterizer interface {
	Rasterize(src, dst string, dpi int) error
}

// Reencoder decodes a raster file and writes it back as PNG.
type Reencoder interface {
	Reencode(src, dst string) error
}

var vectorExt = map[string]bool{
	".svg": true,
	".pdf": true,
	".xps": true,
}

type Converter struct {
	Rasterizer Rasterizer
	Codec      Reencoder
	Log        *slog.Logger
}

// ToPNGs converts files to PNG and returns the resulting paths in input
// order. PNG inputs are returned unchanged. A file that fails to convert
// is logged and left out of the result. Cancelling ctx stops the loop
// before the next file and returns the context's error.
func (c *Converter) ToPNGs(ctx context.Context, files []string, dpi int) ([]string, error) {
	log := c.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pngs := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ext := strings.ToLower(filepath.Ext(f))
		if ext == ".png" {
			log.Info("skipping PNG file", "path", f)
			pngs = append(pngs, f)
			continue
		}

		dst := PNGPath(f)
		var err error
		kind := "raster"
		if vectorExt[ext] {
			kind = "vector"
			err = c.Rasterizer.Rasterize(f, dst, dpi)
		} else {
			err = c.Codec.Reencode(f, dst)
		}
		if err != nil {
			log.Warn("conversion failed", "path", f, "kind", kind, "error", err)
			continue
		}
		log.Info("converted", "src", f, "dst", dst, "kind", kind)
		pngs = append(pngs, dst)
	}
	return pngs, nil
}

// PNGPath returns the sibling of path with the same stem and a .png extension.
func PNGPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}
