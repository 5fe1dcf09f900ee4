// Package action implements the high-level action engine: typed action
// spaces, validity gating on the classified mode, and the execution state
// machines that turn one high-level command into a sequence of emulator
// inputs with an integer outcome code.
package action

import (
	"context"
	"fmt"

	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/emu"
	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/movement"
)

// #region budgets

// Step budgets. HardMaxSteps bounds a single movement command,
// MenuNavMaxSteps bounds each lateral menu search direction, and
// StableMaxTicks bounds the settle wait.
const (
	HardMaxSteps    = 20
	MenuNavMaxSteps = 8
	StableMaxTicks  = 30
)

// #endregion

// #region outcome

// Outcome is an action's integer result code. The integer values are the
// external boundary contract.
type Outcome int

const (
	// NoProgress: nothing observable happened, even on the first tick.
	NoProgress Outcome = -1
	// Completed: the action ran to its natural end.
	Completed Outcome = 0
	// Blocked: partial progress, then the screen stopped responding.
	// Movement actions report this when they run into an obstacle.
	Blocked Outcome = 1
	// Diverted: the mode left free roam mid-action (cutscene, dialogue).
	Diverted Outcome = 2
)

// Engaged aliases Blocked for interaction actions: the press pulled the
// game out of free roam, which is that family's success case.
const Engaged = Blocked

func (o Outcome) String() string {
	switch o {
	case NoProgress:
		return "no_progress"
	case Completed:
		return "completed"
	case Blocked:
		return "blocked"
	case Diverted:
		return "diverted"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// #endregion

// #region params

// Params carries an action's named arguments.
type Params map[string]any

// Str returns a string argument.
func (p Params) Str(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Int returns an integer argument. Whole floats are accepted because JSON
// decoding produces float64.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// #endregion

// #region space

// Space describes the set of encoded values an action accepts.
type Space interface {
	Contains(v []int) bool
	String() string
}

// Discrete is the space {0, ..., N-1}, encoded as a single value.
type Discrete struct {
	N int
}

func (d Discrete) Contains(v []int) bool {
	return len(v) == 1 && v[0] >= 0 && v[0] < d.N
}

func (d Discrete) String() string {
	return fmt.Sprintf("discrete(%d)", d.N)
}

// Box is the integer box [Low, High]^Dim.
type Box struct {
	Low  int
	High int
	Dim  int
}

func (b Box) Contains(v []int) bool {
	if len(v) != b.Dim {
		return false
	}
	for _, x := range v {
		if x < b.Low || x > b.High {
			return false
		}
	}
	return true
}

func (b Box) String() string {
	return fmt.Sprintf("box[%d,%d]^%d", b.Low, b.High, b.Dim)
}

// #endregion

// #region result

// MoveReport is the extra payload movement actions attach to their final
// snapshot. Rotated is nil when no rotation evidence was seen either way.
type MoveReport struct {
	StepsTaken int
	Rotated    *bool
}

// Snapshot is one per-tick observation taken during execution.
type Snapshot struct {
	Frame *frame.Frame
	Mode  classify.Mode
	Move  *MoveReport
}

// Result is the full return of one executed action.
type Result struct {
	Snapshots []Snapshot
	Code      Outcome
}

// Final returns the last snapshot, or nil when execution produced none.
func (r Result) Final() *Snapshot {
	if len(r.Snapshots) == 0 {
		return nil
	}
	return &r.Snapshots[len(r.Snapshots)-1]
}

// #endregion

// #region action

// Action is one high-level command. Implementations are stateless; all
// per-invocation state lives in the Runtime and the Result.
//
// Decode and Encode are total inverses over the action's space: every
// in-space value decodes to params that encode back to it, and out-of-space
// values report false.
type Action interface {
	Name() string
	Doc() string
	Space() Space
	Decode(v []int) (Params, bool)
	Encode(p Params) ([]int, bool)
	Valid(mode classify.Mode, p Params) bool
	Execute(ctx context.Context, rt *Runtime, p Params) (Result, error)
}

// #endregion

// #region runtime

// Budgets bounds the per-action loops. Zero fields fall back to the package
// constants.
type Budgets struct {
	MaxSteps    int
	MenuNav     int
	StableTicks int
}

// Runtime bundles everything an executing action needs: the emulator
// boundary, the mode classifier, the movement judge, and the loop budgets.
type Runtime struct {
	Source     emu.FrameSource
	Classifier *classify.Classifier
	Judge      *movement.Judge
	Epsilon    float64
	Budgets    Budgets
}

func (rt *Runtime) eps() float64 {
	if rt.Epsilon == 0 {
		return frame.DefaultEpsilon
	}
	return rt.Epsilon
}

func (rt *Runtime) changed(a, b *frame.Frame) bool {
	return frame.Changed(a, b, rt.eps())
}

func (rt *Runtime) maxSteps() int {
	if rt.Budgets.MaxSteps > 0 {
		return rt.Budgets.MaxSteps
	}
	return HardMaxSteps
}

func (rt *Runtime) menuNav() int {
	if rt.Budgets.MenuNav > 0 {
		return rt.Budgets.MenuNav
	}
	return MenuNavMaxSteps
}

func (rt *Runtime) stableTicks() int {
	if rt.Budgets.StableTicks > 0 {
		return rt.Budgets.StableTicks
	}
	return StableMaxTicks
}

// snap observes one frame as a snapshot.
func (rt *Runtime) snap(f *frame.Frame) Snapshot {
	return Snapshot{Frame: f, Mode: rt.Classifier.Classify(f, false)}
}

// Mode classifies the emulator's current frame.
func (rt *Runtime) Mode(ctx context.Context) (classify.Mode, error) {
	f, err := rt.Source.CurrentFrame(ctx)
	if err != nil {
		return classify.FreeRoam, fmt.Errorf("action: current frame: %w", err)
	}
	return rt.Classifier.Classify(f, false), nil
}

// #endregion
