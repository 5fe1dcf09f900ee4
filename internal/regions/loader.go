package regions

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jwhitfield/pixelpilot/internal/frame"
)

// #region sample-source

// SampleSource resolves the reference sample for a (region, target) pair.
// target is "" for a single-target region's implicit target.
type SampleSource interface {
	Sample(region, target string) (*frame.Frame, error)
}

// #endregion

// #region dir-source

// DirSource loads reference samples from a per-variant capture directory:
// <root>/<region>.png for single-target regions,
// <root>/<region>/<target>.png for multi-target regions.
type DirSource struct {
	Root string
}

// Sample loads and decodes one reference capture. A missing or unreadable
// file is an error; callers treat it as a configuration error.
func (s DirSource) Sample(region, target string) (*frame.Frame, error) {
	var path string
	if target == "" {
		path = filepath.Join(s.Root, region+".png")
	} else {
		path = filepath.Join(s.Root, region, target+".png")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture %s: %w", path, err)
	}
	defer fh.Close()
	img, err := png.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode capture %s: %w", path, err)
	}
	return toFrame(img), nil
}

func toFrame(img image.Image) *frame.Frame {
	if gray, ok := img.(*image.Gray); ok {
		return frame.FromGray(gray)
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return frame.FromGray(gray)
}

// #endregion

// #region map-source

// MapSource serves samples from memory, keyed "region" or "region/target".
// Used by tests and replay fixtures.
type MapSource map[string]*frame.Frame

// Sample returns the stored sample for the pair.
func (s MapSource) Sample(region, target string) (*frame.Frame, error) {
	key := region
	if target != "" {
		key = region + "/" + target
	}
	f, ok := s[key]
	if !ok {
		return nil, fmt.Errorf("no sample for %q", key)
	}
	return f, nil
}

// #endregion
