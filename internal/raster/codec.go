// Package raster provides the file level image codecs: a MuPDF backed
// vector rasterizer and a general raster decoder that writes PNG.
package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Codec decodes any registered raster format and encodes PNG.
type Codec struct{}

// Load decodes the image held in the file at path.
func (c *Codec) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Reencode decodes src and writes it to dst as PNG.
func (c *Codec) Reencode(src, dst string) error {
	img, err := c.Load(src)
	if err != nil {
		return err
	}
	return c.Save(img, dst)
}

// Save writes img to path as PNG.
func (c *Codec) Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
