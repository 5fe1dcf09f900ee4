package replay

import (
	"context"
	"fmt"

	"github.com/jwhitfield/pixelpilot/internal/action"
	"github.com/jwhitfield/pixelpilot/internal/control"
)

// #region results

// CommandResult is the outcome of replaying one fixture command.
type CommandResult struct {
	Command  string
	Expected action.Outcome
	Actual   action.Outcome
	Matched  bool
	// Err is set when the command never produced an outcome: parse failure,
	// validity rejection, or execution error.
	Err string
}

// Summary aggregates a replay run.
type Summary struct {
	Total    int
	Matched  int
	Diverged int
	Errors   int
}

// Clean reports whether every command ran and matched its expected code.
func (s Summary) Clean() bool {
	return s.Diverged == 0 && s.Errors == 0 && s.Matched == s.Total
}

// #endregion

// #region run

// Run replays every fixture command, in order, against the fixture's
// scripted frame source. Command-level failures are recorded, not returned;
// the error return is reserved for a fixture that cannot be instantiated.
func Run(ctx context.Context, fx *Fixture) ([]CommandResult, error) {
	env, err := fx.Build()
	if err != nil {
		return nil, fmt.Errorf("replay: build fixture: %w", err)
	}
	source, err := fx.Source()
	if err != nil {
		return nil, fmt.Errorf("replay: build source: %w", err)
	}
	rt := &action.Runtime{
		Source:     source,
		Classifier: env.Classifier,
		Judge:      env.Judge,
		Epsilon:    env.Epsilon,
	}
	ctl := control.New()

	results := make([]CommandResult, 0, len(fx.Commands))
	for _, cmd := range fx.Commands {
		res := CommandResult{Command: cmd.Command, Expected: action.Outcome(cmd.Expect)}

		act, params := ctl.StringToAction(cmd.Command)
		if act == nil {
			res.Err = "unparseable command"
			results = append(results, res)
			continue
		}
		mode, err := rt.Mode(ctx)
		if err != nil {
			res.Err = err.Error()
			results = append(results, res)
			continue
		}
		if !act.Valid(mode, params) {
			res.Err = fmt.Sprintf("invalid in mode %s", mode)
			results = append(results, res)
			continue
		}
		out, err := act.Execute(ctx, rt, params)
		if err != nil {
			res.Err = err.Error()
			results = append(results, res)
			continue
		}
		res.Actual = out.Code
		res.Matched = out.Code == res.Expected
		results = append(results, res)
	}
	return results, nil
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []CommandResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != "":
			s.Errors++
		case r.Matched:
			s.Matched++
		default:
			s.Diverged++
		}
	}
	return s
}

// #endregion
