// Package movement decides, from two consecutive frames, whether the player
// character actually moved, merely rotated in place, or got nowhere. The
// game gives no positional feedback, so the judge works purely on frame
// differencing over screen quadrants and the player-anchored grid.
package movement

import (
	"fmt"
	"math"

	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/regions"
)

// #region verdict

// Verdict is the outcome of comparing two consecutive frames.
//
// Rotated is three-valued: nil means unknown (the judge saw scrolling and
// called it movement without checking the player sprite), a non-nil value is
// a definite answer.
type Verdict struct {
	Moved   bool
	Rotated *bool
}

func rotated(v bool) *bool { return &v }

// #endregion

// #region judge

// DefaultQuadrants names the catalog regions the judge probes, in probe
// order.
var DefaultQuadrants = []string{
	"screen_quadrant_1",
	"screen_quadrant_2",
	"screen_quadrant_3",
	"screen_quadrant_4",
}

// Judge holds the geometry the movement heuristic operates on. Zero Epsilon
// means frame.DefaultEpsilon.
type Judge struct {
	Grid      frame.Grid
	Quadrants []frame.Rect
	Epsilon   float64
}

// FromCatalog builds a judge probing the named quadrant regions of the
// catalog.
func FromCatalog(cat *regions.Catalog, grid frame.Grid, names []string, epsilon float64) (*Judge, error) {
	if len(names) == 0 {
		names = DefaultQuadrants
	}
	quads := make([]frame.Rect, 0, len(names))
	for _, name := range names {
		r, ok := cat.Region(name)
		if !ok {
			return nil, fmt.Errorf("movement: catalog has no quadrant region %q", name)
		}
		quads = append(quads, r.Rect)
	}
	return &Judge{Grid: grid, Quadrants: quads, Epsilon: epsilon}, nil
}

func (j *Judge) eps() float64 {
	if j.Epsilon == 0 {
		return frame.DefaultEpsilon
	}
	return j.Epsilon
}

// #endregion

// #region heuristic

// Judge compares two consecutive frames.
//
// The core idea: when the player takes a step the whole viewport scrolls, so
// every quadrant changes. A quadrant that stayed identical while showing
// non-uniform scenery means the camera did not move; the frame change must
// then be local to the player sprite, which is either a rotation (sprite
// redrawn facing a new way) or an animation that went nowhere.
func (j *Judge) Judge(prev, cur *frame.Frame) Verdict {
	eps := j.eps()
	if !frame.Changed(prev, cur, eps) {
		return Verdict{Moved: false, Rotated: rotated(false)}
	}
	static := false
	for _, q := range j.Quadrants {
		prevQuad := prev.Capture(q)
		curQuad := cur.Capture(q)
		if frame.Changed(prevQuad, curQuad, eps) {
			continue
		}
		// Uniform quadrants (open water, fades, scrolling sky) are
		// indistinguishable under translation and cannot veto movement.
		if prevQuad.Flat() || j.uniformQuadrant(prev, q) {
			continue
		}
		if curQuad.Flat() || j.uniformQuadrant(cur, q) {
			continue
		}
		static = true
		break
	}
	if static {
		if frame.Changed(j.Grid.PlayerCell(prev), j.Grid.PlayerCell(cur), eps) {
			return Verdict{Moved: false, Rotated: rotated(true)}
		}
		return Verdict{Moved: false, Rotated: rotated(false)}
	}
	return Verdict{Moved: true, Rotated: nil}
}

// uniformQuadrant reports whether the quadrant's interior grid cells repeat
// along rows or along columns. Cells on the player's alignment axes and the
// one-cell border are excluded: they are the ones a sprite or partial
// scroll touches first.
func (j *Judge) uniformQuadrant(f *frame.Frame, quad frame.Rect) bool {
	eps := j.eps()
	cells := j.Grid.CellsIn(f, quad)

	xMin, yMin := math.MaxInt, math.MaxInt
	xMax, yMax := math.MinInt, math.MinInt
	for c := range cells {
		if c.X*c.Y == 0 {
			delete(cells, c)
			continue
		}
		xMin = min(xMin, c.X)
		yMin = min(yMin, c.Y)
		xMax = max(xMax, c.X)
		yMax = max(yMax, c.Y)
	}

	horizontal := true
scanRows:
	for y := yMin + 1; y < yMax; y++ {
		var first *frame.Frame
		for x := xMin + 1; x < xMax; x++ {
			cell, ok := cells[frame.Cell{X: x, Y: y}]
			if !ok {
				continue
			}
			if first == nil {
				first = cell
				continue
			}
			if frame.Changed(first, cell, eps) {
				horizontal = false
				break scanRows
			}
		}
	}
	if horizontal {
		return true
	}

	for x := xMin + 1; x < xMax; x++ {
		var first *frame.Frame
		for y := yMin + 1; y < yMax; y++ {
			cell, ok := cells[frame.Cell{X: x, Y: y}]
			if !ok {
				continue
			}
			if first == nil {
				first = cell
				continue
			}
			if frame.Changed(first, cell, eps) {
				return false
			}
		}
	}
	return true
}

// #endregion
