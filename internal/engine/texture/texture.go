// Package texture provides image decoding and CPU-side texture sampling.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Load reads and decodes an image file from disk.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %q: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return img, nil
}

// Decode decodes raster image bytes. PNG and JPEG are detected by the
// standard library; TGA (common for authored masks) is tried as a
// fallback since it carries no magic bytes.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	tga, tgaErr := DecodeTGA(data)
	if tgaErr == nil {
		return tga, nil
	}

	return nil, fmt.Errorf("decoding image: %w", err)
}

// ToRGBA converts any decoded image into RGBA pixel storage.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// ToRGBAFlipped converts to RGBA with rows reversed, so the image's top
// row lands at v=1. OpenGL texture uploads want this orientation.
func ToRGBAFlipped(img image.Image) *image.RGBA {
	src := ToRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dstRow := dst.Pix[(h-1-y)*dst.Stride : (h-1-y)*dst.Stride+w*4]
		copy(dstRow, srcRow)
	}
	return dst
}
