package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded bounds %v, want 2x2", img.Bounds())
	}
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 1x1 uncompressed 24-bit TGA, single blue-ish pixel stored BGR.
	data := make([]byte, 18+3)
	data[2] = 2  // uncompressed true-color
	data[12] = 1 // width
	data[14] = 1 // height
	data[16] = 24
	data[18] = 200 // B
	data[19] = 100 // G
	data[20] = 50  // R

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 50 || g>>8 != 100 || b>>8 != 200 || a>>8 != 255 {
		t.Errorf("decoded pixel = (%d,%d,%d,%d), want (50,100,200,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestDecodeTGARejectsGarbage(t *testing.T) {
	if _, err := DecodeTGA([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for truncated TGA data")
	}
	if _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Error("expected error for undecodable data")
	}
}

func TestSamplerCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})         // top-left
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})         // top-right
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})         // bottom-left
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, A: 255}) // bottom-right

	s := NewSampler(img)

	// v=1 is the top row, v=0 the bottom row.
	if got := s.Sample(0.25, 0.75); got.X != 1 || got.Y != 0 {
		t.Errorf("top-left sample = %v, want red", got)
	}
	if got := s.Sample(0.25, 0.25); got.Z != 1 {
		t.Errorf("bottom-left sample = %v, want blue", got)
	}
}

func TestSamplerWraps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 128, G: 64, B: 32, A: 255})
	s := NewSampler(img)

	for _, uv := range [][2]float32{{0, 0}, {1.5, -0.5}, {-3.25, 7.75}} {
		got := s.Sample(uv[0], uv[1])
		if got.W != 1 {
			t.Errorf("Sample(%v) alpha = %v, want 1", uv, got.W)
		}
		if got.X == 0 {
			t.Errorf("Sample(%v) should wrap onto the single pixel, got %v", uv, got)
		}
	}
}

func TestChannelSampler(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 102, B: 0, A: 255})

	green := NewChannelSampler(img, ChannelG)
	got := green.Sample(0.5, 0.5)

	want := float32(102) / 255
	if got.X != want {
		t.Errorf("green channel = %v, want %v", got.X, want)
	}
	if got.Y != got.X || got.Z != got.X || got.W != 1 {
		t.Errorf("channel sample should replicate into YZ with W=1, got %v", got)
	}
}
