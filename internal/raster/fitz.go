package raster

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// FitzRasterizer renders vector documents (SVG, PDF, XPS) with MuPDF.
type FitzRasterizer struct {
	Codec *Codec
}

// Rasterize renders the first page of src at dpi and writes it to dst as PNG.
func (r *FitzRasterizer) Rasterize(src, dst string, dpi int) error {
	doc, err := fitz.New(src)
	if err != nil {
		return err
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return fmt.Errorf("%s has no pages", src)
	}
	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return err
	}
	return r.codec().Save(img, dst)
}

func (r *FitzRasterizer) codec() *Codec {
	if r.Codec == nil {
		return &Codec{}
	}
	return r.Codec
}
