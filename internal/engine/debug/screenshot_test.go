package debug

import (
	"image/png"
	"os"
	"strings"
	"testing"
)

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")

	// 1x2 image: bottom row red, top row blue, as GL would read it.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b <= r {
		t.Error("top pixel should be blue after the vertical flip")
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r <= b {
		t.Error("bottom pixel should be red after the vertical flip")
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.CaptureFromPixels([]byte{0}, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("", "viewer")
	name := sc.GenerateFilename()
	if !strings.HasPrefix(name, "viewer_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected filename %q", name)
	}
}
