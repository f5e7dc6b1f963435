package texture

import (
	"image"

	"github.com/ashfall/sheen/pkg/math"
)

// Channel selects which image channel a channel sampler reads.
type Channel int

// Image channels.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

// ImageSampler samples an image by UV with repeat wrapping. V grows
// upward (v=0 is the bottom row), matching the GL texture convention
// used by the renderer's uploads.
type ImageSampler struct {
	pix    *image.RGBA
	width  int
	height int
}

// NewSampler wraps an image for UV sampling.
func NewSampler(img image.Image) *ImageSampler {
	rgba := ToRGBA(img)
	b := rgba.Bounds()
	return &ImageSampler{
		pix:    rgba,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

// Sample returns the RGBA value at (u, v), each channel in [0,1].
func (s *ImageSampler) Sample(u, v float32) math.Vec4 {
	if s.width == 0 || s.height == 0 {
		return math.Vec4{W: 1}
	}

	x := wrapIndex(u, s.width)
	y := wrapIndex(1-v, s.height)

	i := s.pix.PixOffset(s.pix.Bounds().Min.X+x, s.pix.Bounds().Min.Y+y)
	p := s.pix.Pix[i : i+4 : i+4]

	return math.Vec4{
		X: float32(p[0]) / 255,
		Y: float32(p[1]) / 255,
		Z: float32(p[2]) / 255,
		W: float32(p[3]) / 255,
	}
}

// ChannelSampler reads one channel of an image into the X component,
// for scalar maps whose data lives in a non-red channel (glTF packs
// roughness into green).
type ChannelSampler struct {
	src     *ImageSampler
	channel Channel
}

// NewChannelSampler wraps an image, exposing one channel as a scalar.
func NewChannelSampler(img image.Image, ch Channel) *ChannelSampler {
	return &ChannelSampler{src: NewSampler(img), channel: ch}
}

// Sample returns the selected channel in X (Y and Z mirror it, W is 1).
func (s *ChannelSampler) Sample(u, v float32) math.Vec4 {
	full := s.src.Sample(u, v)
	var val float32
	switch s.channel {
	case ChannelG:
		val = full.Y
	case ChannelB:
		val = full.Z
	case ChannelA:
		val = full.W
	default:
		val = full.X
	}
	return math.Vec4{X: val, Y: val, Z: val, W: 1}
}

// wrapIndex maps a texture coordinate to a pixel index with repeat
// wrapping (nearest filtering).
func wrapIndex(t float32, size int) int {
	t = t - float32(int(t)) // fractional part, keeps sign
	if t < 0 {
		t += 1
	}
	i := int(t * float32(size))
	if i >= size {
		i = size - 1
	}
	return i
}
