package action

import (
	"context"
	"fmt"

	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/emu"
	"github.com/jwhitfield/pixelpilot/internal/frame"
)

// #region single

// single provides the trivial Discrete(1) space shared by the
// argument-free actions.
type single struct{}

func (single) Space() Space { return Discrete{N: 1} }

func (s single) Decode(v []int) (Params, bool) {
	if !s.Space().Contains(v) {
		return nil, false
	}
	return Params{}, true
}

func (single) Encode(Params) ([]int, bool) {
	return []int{0}, true
}

// #endregion

// #region advance-dialogue

// AdvanceDialogue presses B to advance an open dialogue box.
type AdvanceDialogue struct{ single }

func (AdvanceDialogue) Name() string { return "advance_dialogue" }

func (AdvanceDialogue) Doc() string {
	return "advance_dialogue(): advance the open dialogue box one page; only valid in dialogue"
}

func (AdvanceDialogue) Valid(mode classify.Mode, _ Params) bool {
	return mode == classify.InDialogue
}

func (AdvanceDialogue) Execute(ctx context.Context, rt *Runtime, _ Params) (Result, error) {
	return navigate(ctx, rt, "back")
}

// #endregion

// #region interact

// Interact presses A at whatever is in front of the player. Success means
// the game reacted by leaving free roam (dialogue opened, cutscene started);
// a frame sequence that settles back into stillness means nothing was there.
type Interact struct{ single }

func (Interact) Name() string { return "interact" }

func (Interact) Doc() string {
	return "interact(): press A at the object in front of the player; only valid in free roam"
}

func (Interact) Valid(mode classify.Mode, _ Params) bool {
	return mode == classify.FreeRoam
}

func (Interact) Execute(ctx context.Context, rt *Runtime, _ Params) (Result, error) {
	frames, _, err := rt.Source.Step(ctx, emu.A)
	if err != nil {
		return Result{}, fmt.Errorf("action: step a: %w", err)
	}
	code := Outcome(0)
	var seen []*frame.Frame
	var snapshots []Snapshot
scan:
	for _, f := range frames {
		snap := rt.snap(f)
		snapshots = append(snapshots, snap)
		if snap.Mode != classify.FreeRoam {
			code = Engaged
			break
		}
		for _, past := range seen {
			if !rt.changed(past, f) {
				code = NoProgress
				break scan
			}
		}
		seen = append(seen, f)
	}
	if code == 0 {
		code = NoProgress
	}
	if len(snapshots) == 0 {
		cur, err := rt.Source.CurrentFrame(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("action: current frame: %w", err)
		}
		snapshots = append(snapshots, rt.snap(cur))
	}
	return Result{Snapshots: snapshots, Code: code}, nil
}

// #endregion

// #region tick-until-stable

// TickUntilStable ticks the emulator without input until two consecutive
// frames stop differing, or the settle budget runs out. Valid in every mode.
type TickUntilStable struct{ single }

func (TickUntilStable) Name() string { return "tick_until_stable" }

func (TickUntilStable) Doc() string {
	return "tick_until_stable(): tick without input until the screen settles; valid in any mode"
}

func (TickUntilStable) Valid(classify.Mode, Params) bool { return true }

func (TickUntilStable) Execute(ctx context.Context, rt *Runtime, p Params) (Result, error) {
	budget := rt.stableTicks()
	if override, ok := p.Int("max_ticks"); ok && override > 0 {
		budget = override
	}
	prev, err := rt.Source.CurrentFrame(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("action: current frame: %w", err)
	}
	for i := 0; i < budget; i++ {
		if _, _, err := rt.Source.Step(ctx, emu.None); err != nil {
			return Result{}, fmt.Errorf("action: tick: %w", err)
		}
		cur, err := rt.Source.CurrentFrame(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("action: current frame: %w", err)
		}
		if !rt.changed(prev, cur) {
			return Result{Snapshots: []Snapshot{rt.snap(cur)}, Code: Completed}, nil
		}
		prev = cur
	}
	return Result{Snapshots: []Snapshot{rt.snap(prev)}, Code: NoProgress}, nil
}

// #endregion
