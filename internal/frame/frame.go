package frame

import (
	"fmt"
	"image"
)

// #region epsilon

// DefaultEpsilon is the mean-absolute-difference threshold below which two
// frames are considered unchanged.
const DefaultEpsilon = 0.01

// #endregion

// #region rect

// Rect is a rectangular pixel area within a frame.
type Rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// In reports whether the rectangle lies fully within a w×h frame.
func (r Rect) In(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.W > 0 && r.H > 0 &&
		r.X+r.W <= w && r.Y+r.H <= h
}

// Contains reports whether other lies fully within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.W <= r.X+r.W && other.Y+other.H <= r.Y+r.H
}

// #endregion

// #region frame

// Frame is a single-channel pixel grid. Frames are never mutated in place;
// derived images (captures, overlays) are new frames.
type Frame struct {
	W   int
	H   int
	Pix []uint8 // row-major, len == W*H
}

// New creates a frame of the given dimensions filled with value.
func New(w, h int, value uint8) *Frame {
	pix := make([]uint8, w*h)
	if value != 0 {
		for i := range pix {
			pix[i] = value
		}
	}
	return &Frame{W: w, H: h, Pix: pix}
}

// FromPixels wraps a pixel buffer as a frame. The buffer length must be w*h.
func FromPixels(w, h int, pix []uint8) (*Frame, error) {
	if len(pix) != w*h {
		return nil, fmt.Errorf("frame: pixel buffer length %d does not match %dx%d", len(pix), w, h)
	}
	return &Frame{W: w, H: h, Pix: pix}, nil
}

// At returns the pixel value at (x, y).
func (f *Frame) At(x, y int) uint8 {
	return f.Pix[y*f.W+x]
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{W: f.W, H: f.H, Pix: pix}
}

// Capture extracts the rectangle as a new frame.
func (f *Frame) Capture(r Rect) *Frame {
	out := &Frame{W: r.W, H: r.H, Pix: make([]uint8, r.W*r.H)}
	for row := 0; row < r.H; row++ {
		src := (r.Y+row)*f.W + r.X
		copy(out.Pix[row*r.W:(row+1)*r.W], f.Pix[src:src+r.W])
	}
	return out
}

// #endregion

// #region diff

// MeanAbsDiff returns the mean absolute pixel difference between two frames
// of equal dimensions.
func MeanAbsDiff(a, b *Frame) float64 {
	if len(a.Pix) == 0 {
		return 0
	}
	var sum float64
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		sum += float64(d)
	}
	return sum / float64(len(a.Pix))
}

// Changed reports whether the mean absolute pixel difference between two
// frames exceeds eps. Frames of different dimensions always count as changed.
func Changed(a, b *Frame, eps float64) bool {
	if a.W != b.W || a.H != b.H {
		return true
	}
	return MeanAbsDiff(a, b) > eps
}

// Flat reports whether every pixel of the frame holds the same value.
func (f *Frame) Flat() bool {
	if len(f.Pix) == 0 {
		return true
	}
	first := f.Pix[0]
	for _, p := range f.Pix[1:] {
		if p != first {
			return false
		}
	}
	return true
}

// AllAbove reports whether every pixel is strictly greater than v.
func (f *Frame) AllAbove(v uint8) bool {
	for _, p := range f.Pix {
		if p <= v {
			return false
		}
	}
	return true
}

// #endregion

// #region image-interop

// FromGray converts a grayscale image into a frame.
func FromGray(img *image.Gray) *Frame {
	b := img.Bounds()
	out := New(b.Dx(), b.Dy(), 0)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Pix[y*out.W+x] = img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
		}
	}
	return out
}

// ToGray converts the frame into a grayscale image.
func (f *Frame) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+f.W], f.Pix[y*f.W:(y+1)*f.W])
	}
	return img
}

// #endregion
