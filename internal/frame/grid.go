package frame

// #region cell

// Cell addresses one grid cell by its offset from the player cell. The
// player's own cell is (0, 0); cells left/above it have negative offsets.
type Cell struct {
	X int
	Y int
}

// #endregion

// #region grid

// Grid partitions a frame into fixed-size cells anchored at the player's
// screen position. AnchorX/AnchorY is the top-left pixel of the (0, 0) cell.
type Grid struct {
	CellW   int `yaml:"cell_w"`
	CellH   int `yaml:"cell_h"`
	AnchorX int `yaml:"anchor_x"`
	AnchorY int `yaml:"anchor_y"`
}

// cellRect returns the pixel rectangle of a cell.
func (g Grid) cellRect(c Cell) Rect {
	return Rect{
		X: g.AnchorX + c.X*g.CellW,
		Y: g.AnchorY + c.Y*g.CellH,
		W: g.CellW,
		H: g.CellH,
	}
}

// Cells captures every full cell of the frame, keyed by player-relative
// offset. Partial cells at the frame edges are skipped.
func (g Grid) Cells(f *Frame) map[Cell]*Frame {
	out := make(map[Cell]*Frame)
	minX := -(g.AnchorX / g.CellW)
	minY := -(g.AnchorY / g.CellH)
	maxX := (f.W - g.AnchorX) / g.CellW
	maxY := (f.H - g.AnchorY) / g.CellH
	for cy := minY; cy < maxY; cy++ {
		for cx := minX; cx < maxX; cx++ {
			c := Cell{X: cx, Y: cy}
			r := g.cellRect(c)
			if !r.In(f.W, f.H) {
				continue
			}
			out[c] = f.Capture(r)
		}
	}
	return out
}

// CellsIn captures the cells that lie fully inside the given rectangle,
// keyed by player-relative offset.
func (g Grid) CellsIn(f *Frame, bounds Rect) map[Cell]*Frame {
	out := make(map[Cell]*Frame)
	for c, patch := range g.Cells(f) {
		if bounds.Contains(g.cellRect(c)) {
			out[c] = patch
		}
	}
	return out
}

// PlayerCell captures the player's own (0, 0) cell.
func (g Grid) PlayerCell(f *Frame) *Frame {
	return f.Capture(g.cellRect(Cell{}))
}

// #endregion

// #region overlay

// WithGridOverlay returns a copy of the frame with cell boundary lines drawn
// at pixel value 0. Used to show the movement grid to vision agents while in
// free roam; the source frame is left untouched.
func (g Grid) WithGridOverlay(f *Frame) *Frame {
	out := f.Clone()
	for x := g.AnchorX % g.CellW; x < f.W; x += g.CellW {
		for y := 0; y < f.H; y++ {
			out.Pix[y*f.W+x] = 0
		}
	}
	for y := g.AnchorY % g.CellH; y < f.H; y += g.CellH {
		for x := 0; x < f.W; x++ {
			out.Pix[y*f.W+x] = 0
		}
	}
	return out
}

// #endregion
