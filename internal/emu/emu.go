// Package emu defines the boundary to the frame-producing emulator. The
// engine never talks to the emulator process directly; everything goes
// through FrameSource so that tests and replays can substitute a scripted
// implementation.
package emu

import (
	"context"
	"fmt"

	"github.com/jwhitfield/pixelpilot/internal/frame"
)

// #region input

// Input is one low-level emulator input. None means "tick without pressing
// anything".
type Input int

const (
	None Input = iota
	Up
	Down
	Left
	Right
	A
	B
	Start
	Select
)

var inputNames = map[Input]string{
	None:   "none",
	Up:     "up",
	Down:   "down",
	Left:   "left",
	Right:  "right",
	A:      "a",
	B:      "b",
	Start:  "start",
	Select: "select",
}

func (in Input) String() string {
	if name, ok := inputNames[in]; ok {
		return name
	}
	return fmt.Sprintf("input(%d)", int(in))
}

// ParseInput resolves an input by its wire name.
func ParseInput(name string) (Input, error) {
	for in, n := range inputNames {
		if n == name {
			return in, nil
		}
	}
	return None, fmt.Errorf("emu: unknown input %q", name)
}

// #endregion

// #region source

// FrameSource is the emulator as seen by the action engine.
//
// Step applies one input and returns the frames rendered while it settled,
// plus whether the emulated game signalled termination. CurrentFrame returns
// the most recently rendered frame without advancing emulation.
type FrameSource interface {
	Step(ctx context.Context, in Input) (frames []*frame.Frame, done bool, err error)
	CurrentFrame(ctx context.Context) (*frame.Frame, error)
}

// #endregion

// #region scripted

// ScriptedStep is one pre-recorded emulator response.
type ScriptedStep struct {
	Frames []*frame.Frame
	Done   bool
}

// ScriptedSource replays a fixed script of emulator responses. Once the
// script is exhausted every further step returns the last frame again, i.e.
// the screen stops changing. Inputs records every input received, in order.
type ScriptedSource struct {
	Inputs []Input

	script  []ScriptedStep
	pos     int
	current *frame.Frame
}

// NewScripted builds a source showing initial before any step is taken.
func NewScripted(initial *frame.Frame, script ...ScriptedStep) *ScriptedSource {
	return &ScriptedSource{script: script, current: initial}
}

// Step pops the next scripted response.
func (s *ScriptedSource) Step(_ context.Context, in Input) ([]*frame.Frame, bool, error) {
	s.Inputs = append(s.Inputs, in)
	if s.pos >= len(s.script) {
		return []*frame.Frame{s.current}, false, nil
	}
	step := s.script[s.pos]
	s.pos++
	if len(step.Frames) > 0 {
		s.current = step.Frames[len(step.Frames)-1]
	}
	frames := step.Frames
	if len(frames) == 0 {
		frames = []*frame.Frame{s.current}
	}
	return frames, step.Done, nil
}

// CurrentFrame returns the last frame produced by the script so far.
func (s *ScriptedSource) CurrentFrame(context.Context) (*frame.Frame, error) {
	return s.current, nil
}

// #endregion
