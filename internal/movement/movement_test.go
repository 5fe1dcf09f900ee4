package movement

import (
	"testing"

	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/regions"
)

// Test geometry: 64x64 frames, 8px cells anchored at the player cell
// (32,32), four 32x32 quadrants. The top-left quadrant has a 2x2 interior
// of grid cells after border and axis exclusion, which is enough to make it
// non-uniform.
var (
	testGrid = frame.Grid{CellW: 8, CellH: 8, AnchorX: 32, AnchorY: 32}

	quadTL = frame.Rect{X: 0, Y: 0, W: 32, H: 32}
	quadTR = frame.Rect{X: 32, Y: 0, W: 32, H: 32}
	quadBL = frame.Rect{X: 0, Y: 32, W: 32, H: 32}
	quadBR = frame.Rect{X: 32, Y: 32, W: 32, H: 32}

	playerRect = frame.Rect{X: 32, Y: 32, W: 8, H: 8}
)

func newJudge() *Judge {
	return &Judge{
		Grid:      testGrid,
		Quadrants: []frame.Rect{quadTL, quadTR, quadBL, quadBR},
	}
}

func paint(f *frame.Frame, r frame.Rect, value uint8) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			f.Pix[y*f.W+x] = value
		}
	}
}

// scenery returns a frame whose top-left quadrant holds non-repeating
// scenery: a checkerboard over the quadrant's interior grid cells.
func scenery() *frame.Frame {
	f := frame.New(64, 64, 200)
	paint(f, frame.Rect{X: 8, Y: 8, W: 8, H: 8}, 0)     // cell (-3,-3)
	paint(f, frame.Rect{X: 16, Y: 8, W: 8, H: 8}, 100)  // cell (-2,-3)
	paint(f, frame.Rect{X: 8, Y: 16, W: 8, H: 8}, 100)  // cell (-3,-2)
	paint(f, frame.Rect{X: 16, Y: 16, W: 8, H: 8}, 0)   // cell (-2,-2)
	return f
}

func wantVerdict(t *testing.T, got Verdict, moved bool, rot *bool) {
	t.Helper()
	if got.Moved != moved {
		t.Errorf("Moved = %v, want %v", got.Moved, moved)
	}
	switch {
	case rot == nil && got.Rotated != nil:
		t.Errorf("Rotated = %v, want nil", *got.Rotated)
	case rot != nil && got.Rotated == nil:
		t.Errorf("Rotated = nil, want %v", *rot)
	case rot != nil && got.Rotated != nil && *rot != *got.Rotated:
		t.Errorf("Rotated = %v, want %v", *got.Rotated, *rot)
	}
}

func TestJudgeUnchangedFrame(t *testing.T) {
	j := newJudge()
	f := scenery()
	wantVerdict(t, j.Judge(f, f.Clone()), false, rotated(false))
}

func TestJudgeRotationInPlace(t *testing.T) {
	j := newJudge()
	prev := scenery()
	cur := prev.Clone()
	// Only the player sprite redraws; the scenery quadrant stays put.
	paint(cur, playerRect, 0)
	wantVerdict(t, j.Judge(prev, cur), false, rotated(true))
}

func TestJudgeBlockedWithoutRotation(t *testing.T) {
	j := newJudge()
	prev := scenery()
	cur := prev.Clone()
	// Something far from the player animates, but the scenery quadrant and
	// the player cell are untouched.
	paint(cur, frame.Rect{X: 56, Y: 56, W: 8, H: 8}, 0)
	wantVerdict(t, j.Judge(prev, cur), false, rotated(false))
}

func TestJudgeScrollIsMovement(t *testing.T) {
	j := newJudge()
	prev := scenery()
	cur := prev.Clone()
	for i := range cur.Pix {
		cur.Pix[i] += 30
	}
	wantVerdict(t, j.Judge(prev, cur), true, nil)
}

func TestJudgeFlatQuadrantsCannotVeto(t *testing.T) {
	j := newJudge()
	// Featureless screen: every static quadrant is flat, so a local change
	// near the player still counts as movement.
	prev := frame.New(64, 64, 200)
	cur := prev.Clone()
	paint(cur, playerRect, 0)
	wantVerdict(t, j.Judge(prev, cur), true, nil)
}

func TestJudgeRepeatingSceneryCannotVeto(t *testing.T) {
	j := newJudge()
	// Non-flat but repeating quadrant: every interior cell identical.
	prev := frame.New(64, 64, 200)
	for _, r := range []frame.Rect{
		{X: 8, Y: 8, W: 8, H: 8},
		{X: 16, Y: 8, W: 8, H: 8},
		{X: 8, Y: 16, W: 8, H: 8},
		{X: 16, Y: 16, W: 8, H: 8},
	} {
		paint(prev, r, 60)
	}
	cur := prev.Clone()
	paint(cur, playerRect, 0)
	wantVerdict(t, j.Judge(prev, cur), true, nil)
}

func TestFromCatalog(t *testing.T) {
	spec := regions.Spec{
		FrameW:    64,
		FrameH:    64,
		Threshold: 2.0,
		MultiRegions: []regions.Def{
			{Name: "screen_quadrant_1", Rect: quadTR},
			{Name: "screen_quadrant_2", Rect: quadTL},
			{Name: "screen_quadrant_3", Rect: quadBL},
			{Name: "screen_quadrant_4", Rect: quadBR},
		},
	}
	cat, err := regions.Build(spec, regions.MapSource{})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	j, err := FromCatalog(cat, testGrid, nil, 0)
	if err != nil {
		t.Fatalf("from catalog: %v", err)
	}
	if len(j.Quadrants) != 4 {
		t.Fatalf("quadrant count: got %d, want 4", len(j.Quadrants))
	}
	if j.Quadrants[0] != quadTR {
		t.Errorf("quadrant order wrong: first = %+v, want %+v", j.Quadrants[0], quadTR)
	}

	if _, err := FromCatalog(cat, testGrid, []string{"no_such_quadrant"}, 0); err == nil {
		t.Error("unknown quadrant region should fail")
	}
}
