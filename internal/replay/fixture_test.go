package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwhitfield/pixelpilot/internal/frame"
)

// #region pixel-tests

func TestPixelsRoundTrip(t *testing.T) {
	pix := []uint8{0, 1, 2, 3, 100, 255, 7, 8, 9, 10, 11, 12}
	f, err := frame.FromPixels(4, 3, pix)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	decoded, err := EncodePixels(f).Frame()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.W != 4 || decoded.H != 3 {
		t.Fatalf("geometry = %dx%d, want 4x3", decoded.W, decoded.H)
	}
	for i := range pix {
		if decoded.Pix[i] != pix[i] {
			t.Fatalf("pixel %d = %d, want %d", i, decoded.Pix[i], pix[i])
		}
	}
}

func TestPixelsDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		rows Pixels
	}{
		{"empty", Pixels{}},
		{"empty row", Pixels{""}},
		{"ragged", Pixels{"1 2 3", "1 2"}},
		{"not a number", Pixels{"1 x 3"}},
		{"out of range", Pixels{"1 256 3"}},
		{"negative", Pixels{"1 -2 3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.rows.Frame(); err == nil {
				t.Errorf("expected decode error for %v", tt.rows)
			}
		})
	}
}

// #endregion

// #region loader-tests

func TestLoadFixtureMissing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing fixture should fail")
	}
}

func TestLoadFixtureMalformed(t *testing.T) {
	path := writeFixtureFile(t, []byte("{not json"))
	if _, err := LoadFixture(path); err == nil {
		t.Error("malformed fixture should fail")
	}
}

// #endregion

// #region build-tests

func TestBuildWithoutQuadrantsHasNilJudge(t *testing.T) {
	fx := testFixture(t, nil)
	env, err := fx.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if env.Judge != nil {
		t.Error("fixture without quadrants should have no movement judge")
	}
	if env.Classifier == nil || env.Catalog == nil {
		t.Fatal("classifier and catalog must be built")
	}
}

func TestBuildWithQuadrants(t *testing.T) {
	fx := testFixture(t, nil)
	fx.Variant.MultiRegions = append(fx.Variant.MultiRegions,
		RegionDef{Name: "screen_quadrant_1", Rect: frame.Rect{X: 8, Y: 0, W: 8, H: 8}},
		RegionDef{Name: "screen_quadrant_2", Rect: frame.Rect{X: 0, Y: 0, W: 8, H: 8}},
		RegionDef{Name: "screen_quadrant_3", Rect: frame.Rect{X: 0, Y: 8, W: 8, H: 8}},
		RegionDef{Name: "screen_quadrant_4", Rect: frame.Rect{X: 8, Y: 8, W: 8, H: 8}},
	)
	env, err := fx.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if env.Judge == nil || len(env.Judge.Quadrants) != 4 {
		t.Fatalf("judge = %+v, want 4 quadrants", env.Judge)
	}
}

func TestBuildRejectsBadSampleGeometry(t *testing.T) {
	fx := testFixture(t, nil)
	// 2x2 sample on a 4x4 region.
	fx.Variant.Regions[0].Sample = Pixels{"1 2", "3 4"}
	if _, err := fx.Build(); err == nil {
		t.Error("sample/region size mismatch should fail")
	}
}

func TestBuildRejectsDanglingClassifierRegion(t *testing.T) {
	fx := testFixture(t, nil)
	fx.Variant.Classifier.DialogueRegion = "not_there"
	_, err := fx.Build()
	if err == nil || !strings.Contains(err.Error(), "not_there") {
		t.Errorf("expected dangling-region error, got %v", err)
	}
}

// #endregion
