package frame

import (
	"testing"
)

var testGrid = Grid{CellW: 8, CellH: 8, AnchorX: 32, AnchorY: 32}

func TestCells(t *testing.T) {
	f := New(64, 64, 50)
	cells := testGrid.Cells(f)

	// 64/8 = 8 cells per axis, anchor at cell index 4: offsets -4..3
	if len(cells) != 64 {
		t.Fatalf("cell count: got %d, want 64", len(cells))
	}
	for _, c := range []Cell{{-4, -4}, {0, 0}, {3, 3}} {
		if _, ok := cells[c]; !ok {
			t.Errorf("missing cell %v", c)
		}
	}
	if _, ok := cells[Cell{4, 0}]; ok {
		t.Error("cell beyond frame edge present")
	}
	if got := cells[Cell{0, 0}]; got.W != 8 || got.H != 8 {
		t.Errorf("cell dims: got %dx%d, want 8x8", got.W, got.H)
	}
}

func TestCellsIn(t *testing.T) {
	f := New(64, 64, 0)
	topLeft := Rect{X: 0, Y: 0, W: 32, H: 32}
	cells := testGrid.CellsIn(f, topLeft)

	if len(cells) != 16 {
		t.Fatalf("quadrant cell count: got %d, want 16", len(cells))
	}
	for c := range cells {
		if c.X >= 0 || c.Y >= 0 {
			t.Errorf("cell %v outside the top-left quadrant", c)
		}
	}
}

func TestPlayerCell(t *testing.T) {
	f := New(64, 64, 10)
	// Mark the player cell region
	for y := 32; y < 40; y++ {
		for x := 32; x < 40; x++ {
			f.Pix[y*64+x] = 200
		}
	}
	cell := testGrid.PlayerCell(f)
	if !cell.Flat() || cell.Pix[0] != 200 {
		t.Error("player cell did not capture the anchor region")
	}
}

func TestWithGridOverlayDoesNotMutate(t *testing.T) {
	f := New(64, 64, 90)
	out := testGrid.WithGridOverlay(f)
	if !f.Flat() {
		t.Error("overlay mutated the source frame")
	}
	if out.Flat() {
		t.Error("overlay drew no grid lines")
	}
	if out.At(0, 1) != 0 {
		t.Error("expected a vertical grid line at x=0")
	}
}
