package raster

import (
	"image"
	"image/color"
)

// NewFrameBuffer allocates a w×h NRGBA image filled with bg.
func NewFrameBuffer(w, h int, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Fill(img, bg)
	return img
}

// Fill overwrites every pixel of img with c.
func Fill(img *image.NRGBA, c color.NRGBA) {
	pix := img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	// doubling copy: each pass duplicates the already filled prefix
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}
