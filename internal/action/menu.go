package action

import (
	"context"
	"fmt"
	"log"

	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/emu"
)

// #region nav

// navOrder fixes the Discrete encoding shared by the menu and puzzle
// navigation surfaces.
var navOrder = []string{"up", "down", "confirm", "left", "right", "back"}

var navInputs = map[string]emu.Input{
	"up":      emu.Up,
	"down":    emu.Down,
	"confirm": emu.A,
	"left":    emu.Left,
	"right":   emu.Right,
	"back":    emu.B,
}

func navIndex(name string) (int, bool) {
	for i, n := range navOrder {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// navigate presses one navigation input and scores it by whether the screen
// reacted at all.
func navigate(ctx context.Context, rt *Runtime, name string) (Result, error) {
	input, ok := navInputs[name]
	if !ok {
		return Result{}, fmt.Errorf("action: invalid navigation input %q", name)
	}
	cur, err := rt.Source.CurrentFrame(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("action: current frame: %w", err)
	}
	frames, _, err := rt.Source.Step(ctx, input)
	if err != nil {
		return Result{}, fmt.Errorf("action: step %s: %w", name, err)
	}
	final := cur
	if len(frames) > 0 {
		final = frames[len(frames)-1]
	}
	code := NoProgress
	if rt.changed(cur, final) {
		code = Completed
	}
	return Result{Snapshots: []Snapshot{rt.snap(final)}, Code: code}, nil
}

// #endregion

// #region menu

// Menu navigates an open menu: arrows, confirm (A), back (B). Reports
// Completed when the screen reacted, NoProgress otherwise.
type Menu struct{}

func (Menu) Name() string { return "menu" }

func (Menu) Doc() string {
	return "menu(menu_action): press up/down/left/right/confirm/back inside an open menu; only valid in a menu"
}

func (Menu) Space() Space { return Discrete{N: len(navOrder)} }

func (a Menu) Decode(v []int) (Params, bool) {
	if !a.Space().Contains(v) {
		return nil, false
	}
	return Params{"menu_action": navOrder[v[0]]}, true
}

func (Menu) Encode(p Params) ([]int, bool) {
	name, ok := p.Str("menu_action")
	if !ok {
		return nil, false
	}
	i, ok := navIndex(name)
	if !ok {
		return nil, false
	}
	return []int{i}, true
}

func (Menu) Valid(mode classify.Mode, p Params) bool {
	if raw, present := p["menu_action"]; present {
		name, ok := raw.(string)
		if !ok {
			return false
		}
		if _, known := navIndex(name); !known {
			return false
		}
	}
	return mode == classify.InMenu
}

func (Menu) Execute(ctx context.Context, rt *Runtime, p Params) (Result, error) {
	name, ok := p.Str("menu_action")
	if !ok {
		return Result{}, fmt.Errorf("action: menu needs a menu_action")
	}
	return navigate(ctx, rt, name)
}

// #endregion

// #region puzzle

// Puzzle navigates a puzzle or deduction screen. Same surface as Menu,
// gated on puzzle mode instead.
type Puzzle struct{}

func (Puzzle) Name() string { return "puzzle" }

func (Puzzle) Doc() string {
	return "puzzle(puzzle_action): press up/down/left/right/confirm/back inside a puzzle screen; only valid in a puzzle"
}

func (Puzzle) Space() Space { return Discrete{N: len(navOrder)} }

func (a Puzzle) Decode(v []int) (Params, bool) {
	if !a.Space().Contains(v) {
		return nil, false
	}
	return Params{"puzzle_action": navOrder[v[0]]}, true
}

func (Puzzle) Encode(p Params) ([]int, bool) {
	name, ok := p.Str("puzzle_action")
	if !ok {
		return nil, false
	}
	i, ok := navIndex(name)
	if !ok {
		return nil, false
	}
	return []int{i}, true
}

func (Puzzle) Valid(mode classify.Mode, p Params) bool {
	if raw, present := p["puzzle_action"]; present {
		name, ok := raw.(string)
		if !ok {
			return false
		}
		if _, known := navIndex(name); !known {
			return false
		}
	}
	return mode == classify.InPuzzle
}

func (Puzzle) Execute(ctx context.Context, rt *Runtime, p Params) (Result, error) {
	name, ok := p.Str("puzzle_action")
	if !ok {
		return Result{}, fmt.Errorf("action: puzzle needs a puzzle_action")
	}
	return navigate(ctx, rt, name)
}

// #endregion

// #region open-menu

// menuOptions fixes the Discrete encoding of OpenMenu. The non-"open"
// options name classifier capability hooks.
var menuOptions = []string{"open", "case_notes", "evidence", "location"}

// OpenMenu opens the investigation menu from free roam and optionally
// pages sideways until a named section is on screen. The lateral search
// tries right then left, each bounded by the menu navigation budget.
type OpenMenu struct{}

func (OpenMenu) Name() string { return "open_menu" }

func (OpenMenu) Doc() string {
	return "open_menu(option): open the investigation menu, optionally paging to case_notes/evidence/location; only valid in free roam"
}

func (OpenMenu) Space() Space { return Discrete{N: len(menuOptions)} }

func (a OpenMenu) Decode(v []int) (Params, bool) {
	if !a.Space().Contains(v) {
		return nil, false
	}
	return Params{"option": menuOptions[v[0]]}, true
}

func (OpenMenu) Encode(p Params) ([]int, bool) {
	option, ok := p.Str("option")
	if !ok {
		option = "open"
	}
	for i, o := range menuOptions {
		if o == option {
			return []int{i}, true
		}
	}
	return nil, false
}

func (OpenMenu) Valid(mode classify.Mode, p Params) bool {
	if raw, present := p["option"]; present {
		option, ok := raw.(string)
		if !ok {
			return false
		}
		known := false
		for _, o := range menuOptions {
			if o == option {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return mode == classify.FreeRoam
}

func (OpenMenu) Execute(ctx context.Context, rt *Runtime, p Params) (Result, error) {
	option, ok := p.Str("option")
	if !ok {
		option = "open"
	}

	_, _, err := rt.Source.Step(ctx, emu.Start)
	if err != nil {
		return Result{}, fmt.Errorf("action: step start: %w", err)
	}
	cur, err := rt.Source.CurrentFrame(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("action: current frame: %w", err)
	}
	snapshots := []Snapshot{rt.snap(cur)}
	if !rt.Classifier.IsInMenu(cur) {
		return Result{Snapshots: snapshots, Code: NoProgress}, nil
	}
	if option == "open" {
		return Result{Snapshots: snapshots, Code: Completed}, nil
	}
	if rt.Classifier.Hook(option, cur) {
		return Result{Snapshots: snapshots, Code: Completed}, nil
	}
	for _, input := range []emu.Input{emu.Right, emu.Left} {
		for i := 0; i < rt.menuNav(); i++ {
			if _, _, err := rt.Source.Step(ctx, input); err != nil {
				return Result{}, fmt.Errorf("action: step %s: %w", input, err)
			}
			cur, err = rt.Source.CurrentFrame(ctx)
			if err != nil {
				return Result{}, fmt.Errorf("action: current frame: %w", err)
			}
			snapshots = append(snapshots, rt.snap(cur))
			if rt.Classifier.Hook(option, cur) {
				return Result{Snapshots: snapshots, Code: Completed}, nil
			}
		}
	}
	log.Printf("[ACTION] open_menu: %s not found within %d pages each way", option, rt.menuNav())
	return Result{Snapshots: snapshots, Code: NoProgress}, nil
}

// #endregion
