package action

import (
	"context"
	"fmt"
	"log"

	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/emu"
)

// #region directions

var directionInputs = map[string]emu.Input{
	"up":    emu.Up,
	"down":  emu.Down,
	"left":  emu.Left,
	"right": emu.Right,
}

// directionOrder fixes the block layout of the MoveSteps space.
var directionOrder = []string{"up", "down", "left", "right"}

// #endregion

// #region mover

// move runs the shared free-roam movement loop: press the direction, judge
// whether the player actually moved, stop on obstacles, mode changes, or
// emulator termination. Rotation ticks consume loop progress but do not
// count as successful steps.
func move(ctx context.Context, rt *Runtime, direction string, steps int) (Result, error) {
	input, ok := directionInputs[direction]
	if !ok {
		return Result{}, fmt.Errorf("action: invalid direction %q", direction)
	}
	if max := rt.maxSteps(); steps > max {
		log.Printf("[ACTION] move %s: clamping %d steps to budget %d", direction, steps, max)
		steps = max
	}

	prev, err := rt.Source.CurrentFrame(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("action: current frame: %w", err)
	}

	var snapshots []Snapshot
	nStep := 0
	nSuccessful := 0
	var hasRotated *bool
	mode := classify.FreeRoam

	for nStep < steps && mode == classify.FreeRoam {
		_, done, err := rt.Source.Step(ctx, input)
		if err != nil {
			return Result{}, fmt.Errorf("action: step %s: %w", direction, err)
		}
		cur, err := rt.Source.CurrentFrame(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("action: current frame: %w", err)
		}
		snapshots = append(snapshots, rt.snap(cur))
		if done {
			break
		}
		verdict := rt.Judge.Judge(prev, cur)
		if verdict.Rotated != nil && *verdict.Rotated {
			r := true
			hasRotated = &r
		}
		if !verdict.Moved && (verdict.Rotated == nil || !*verdict.Rotated) {
			break
		}
		if verdict.Moved {
			nSuccessful++
		}
		mode = snapshots[len(snapshots)-1].Mode
		if mode != classify.FreeRoam {
			break
		}
		nStep++
		prev = cur
	}

	var code Outcome
	switch {
	case mode != classify.FreeRoam:
		log.Printf("[ACTION] move %s: diverted to %s after %d steps", direction, mode, nSuccessful)
		code = Diverted
	case nStep <= 0:
		code = NoProgress
	case nStep == steps:
		code = Completed
	default:
		code = Blocked
	}

	if len(snapshots) == 0 {
		snapshots = append(snapshots, rt.snap(prev))
	}
	snapshots[len(snapshots)-1].Move = &MoveReport{
		StepsTaken: nSuccessful,
		Rotated:    hasRotated,
	}
	return Result{Snapshots: snapshots, Code: code}, nil
}

// #endregion

// #region move-steps

// MoveSteps moves the player a number of grid steps in one cardinal
// direction. Encoded as Discrete(4*HardMaxSteps): one block of HardMaxSteps
// values per direction, in up/down/left/right order, step count = offset+1.
type MoveSteps struct{}

func (MoveSteps) Name() string { return "move_steps" }

func (MoveSteps) Doc() string {
	return "move_steps(direction, steps): walk up/down/left/right for the given number of grid steps; only valid in free roam"
}

func (MoveSteps) Space() Space { return Discrete{N: 4 * HardMaxSteps} }

func (a MoveSteps) Decode(v []int) (Params, bool) {
	if !a.Space().Contains(v) {
		return nil, false
	}
	return Params{
		"direction": directionOrder[v[0]/HardMaxSteps],
		"steps":     v[0]%HardMaxSteps + 1,
	}, true
}

func (MoveSteps) Encode(p Params) ([]int, bool) {
	direction, ok := p.Str("direction")
	if !ok {
		return nil, false
	}
	steps, ok := p.Int("steps")
	if !ok || steps <= 0 || steps > HardMaxSteps {
		return nil, false
	}
	for i, d := range directionOrder {
		if d == direction {
			return []int{i*HardMaxSteps + steps - 1}, true
		}
	}
	return nil, false
}

func (MoveSteps) Valid(mode classify.Mode, p Params) bool {
	if raw, present := p["direction"]; present {
		d, ok := raw.(string)
		if !ok || directionInputs[d] == emu.None {
			return false
		}
	}
	if raw, present := p["steps"]; present {
		s, ok := Params{"steps": raw}.Int("steps")
		if !ok || s <= 0 {
			return false
		}
	}
	return mode == classify.FreeRoam
}

func (MoveSteps) Execute(ctx context.Context, rt *Runtime, p Params) (Result, error) {
	direction, ok := p.Str("direction")
	if !ok {
		return Result{}, fmt.Errorf("action: move_steps needs a direction")
	}
	steps, ok := p.Int("steps")
	if !ok {
		return Result{}, fmt.Errorf("action: move_steps needs a step count")
	}
	return move(ctx, rt, direction, steps)
}

// #endregion

// #region move-grid

// MoveGrid moves the player on both axes: the full horizontal distance
// first, then vertical. A horizontal leg that does not complete aborts the
// vertical leg. Positive x is right, positive y is up. Encoded as the box
// [-HardMaxSteps/2, HardMaxSteps/2]^2.
type MoveGrid struct{}

func (MoveGrid) Name() string { return "move_grid" }

func (MoveGrid) Doc() string {
	return "move_grid(x_steps, y_steps): walk the x axis fully (positive = right), then the y axis (positive = up); only valid in free roam"
}

func (MoveGrid) Space() Space {
	return Box{Low: -HardMaxSteps / 2, High: HardMaxSteps / 2, Dim: 2}
}

func (a MoveGrid) Decode(v []int) (Params, bool) {
	if !a.Space().Contains(v) {
		return nil, false
	}
	return Params{"x_steps": v[0], "y_steps": v[1]}, true
}

func (MoveGrid) Encode(p Params) ([]int, bool) {
	x, okX := p.Int("x_steps")
	y, okY := p.Int("y_steps")
	if !okX || !okY {
		return nil, false
	}
	return []int{x, y}, true
}

func (MoveGrid) Valid(mode classify.Mode, p Params) bool {
	x, okX := p.Int("x_steps")
	y, okY := p.Int("y_steps")
	if okX && okY && x == 0 && y == 0 {
		return false
	}
	if _, present := p["x_steps"]; present && !okX {
		return false
	}
	if _, present := p["y_steps"]; present && !okY {
		return false
	}
	return mode == classify.FreeRoam
}

func (MoveGrid) Execute(ctx context.Context, rt *Runtime, p Params) (Result, error) {
	x, ok := p.Int("x_steps")
	if !ok {
		return Result{}, fmt.Errorf("action: move_grid needs x_steps")
	}
	y, ok := p.Int("y_steps")
	if !ok {
		return Result{}, fmt.Errorf("action: move_grid needs y_steps")
	}

	var snapshots []Snapshot
	if x != 0 {
		direction := "right"
		if x < 0 {
			direction = "left"
		}
		res, err := move(ctx, rt, direction, abs(x))
		if err != nil {
			return Result{}, err
		}
		snapshots = res.Snapshots
		if res.Code != Completed {
			return Result{Snapshots: snapshots, Code: res.Code}, nil
		}
	}
	if y != 0 {
		direction := "up"
		if y < 0 {
			direction = "down"
		}
		res, err := move(ctx, rt, direction, abs(y))
		if err != nil {
			return Result{}, err
		}
		return Result{Snapshots: append(snapshots, res.Snapshots...), Code: res.Code}, nil
	}
	if x == 0 {
		// Both axes zero; validity should have rejected this.
		cur, err := rt.Source.CurrentFrame(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("action: current frame: %w", err)
		}
		return Result{Snapshots: []Snapshot{rt.snap(cur)}, Code: NoProgress}, nil
	}
	return Result{Snapshots: snapshots, Code: Completed}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion
