// Package control turns textual commands from a driving agent into typed
// actions. The grammar is name(arg1,arg2,...): case-insensitive, comma
// separated arguments, no nesting. Anything that does not resolve to a
// known action with parseable arguments maps to (nil, nil); the caller
// decides how to complain.
package control

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jwhitfield/pixelpilot/internal/action"
)

// #region registry

// ParseFunc maps a command's positional arguments to action parameters.
type ParseFunc func(args []string) (action.Params, bool)

type entry struct {
	act   action.Action
	parse ParseFunc
}

// Controller resolves command strings against a fixed command table built
// at construction.
type Controller struct {
	order   []string
	entries map[string]entry
}

// New returns a controller with the full default command set.
func New() *Controller {
	c := &Controller{entries: make(map[string]entry)}
	c.register(action.TickUntilStable{}, parseOptionalTicks)
	c.register(action.MoveSteps{}, parseMoveSteps)
	c.register(action.MoveGrid{}, parseMoveGrid)
	c.register(action.Interact{}, parseNoArgs)
	c.register(action.OpenMenu{}, parseOpenMenu)
	c.register(action.Menu{}, parseKeyedNav("menu_action"))
	c.register(action.Puzzle{}, parseKeyedNav("puzzle_action"))
	c.register(action.AdvanceDialogue{}, parseNoArgs)
	return c
}

func (c *Controller) register(act action.Action, parse ParseFunc) {
	name := act.Name()
	if _, dup := c.entries[name]; dup {
		panic("control: duplicate command " + name)
	}
	c.entries[name] = entry{act: act, parse: parse}
	c.order = append(c.order, name)
}

// Lookup returns the registered action for a command name.
func (c *Controller) Lookup(name string) (action.Action, bool) {
	e, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	return e.act, true
}

// Actions returns every registered action in registration order.
func (c *Controller) Actions() []action.Action {
	out := make([]action.Action, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name].act)
	}
	return out
}

// ActionStrings returns the documentation line of every command, sorted by
// name, for prompting a driving agent.
func (c *Controller) ActionStrings() []string {
	out := make([]string, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name].act.Doc())
	}
	sort.Strings(out)
	return out
}

// #endregion

// #region grammar

// StringToAction parses one command string. The input is lowercased and
// trimmed; the command name is everything before the first parenthesis, the
// arguments everything up to the first closing parenthesis after it.
// Unknown names and unparseable arguments both yield (nil, nil).
func (c *Controller) StringToAction(s string) (action.Action, action.Params) {
	s = strings.ToLower(strings.TrimSpace(s))
	open := strings.Index(s, "(")
	if open < 0 {
		return nil, nil
	}
	closing := strings.Index(s[open:], ")")
	if closing < 0 {
		return nil, nil
	}
	name := strings.TrimSpace(s[:open])
	argStr := strings.TrimSpace(s[open+1 : open+closing])

	e, ok := c.entries[name]
	if !ok {
		return nil, nil
	}
	var args []string
	if argStr != "" {
		for _, a := range strings.Split(argStr, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	params, ok := e.parse(args)
	if !ok {
		return nil, nil
	}
	return e.act, params
}

// #endregion

// #region parsers

func parseNoArgs(args []string) (action.Params, bool) {
	if len(args) != 0 {
		return nil, false
	}
	return action.Params{}, true
}

func parseOptionalTicks(args []string) (action.Params, bool) {
	switch len(args) {
	case 0:
		return action.Params{}, true
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return nil, false
		}
		return action.Params{"max_ticks": n}, true
	}
	return nil, false
}

func parseMoveSteps(args []string) (action.Params, bool) {
	if len(args) != 2 {
		return nil, false
	}
	switch args[0] {
	case "up", "down", "left", "right":
	default:
		return nil, false
	}
	steps, err := strconv.Atoi(args[1])
	if err != nil || steps <= 0 {
		return nil, false
	}
	return action.Params{"direction": args[0], "steps": steps}, true
}

func parseMoveGrid(args []string) (action.Params, bool) {
	if len(args) != 2 {
		return nil, false
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, false
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, false
	}
	return action.Params{"x_steps": x, "y_steps": y}, true
}

func parseOpenMenu(args []string) (action.Params, bool) {
	switch len(args) {
	case 0:
		return action.Params{}, true
	case 1:
		switch args[0] {
		case "open", "case_notes", "evidence", "location":
			return action.Params{"option": args[0]}, true
		}
	}
	return nil, false
}

func parseKeyedNav(key string) ParseFunc {
	return func(args []string) (action.Params, bool) {
		if len(args) != 1 {
			return nil, false
		}
		switch args[0] {
		case "up", "down", "confirm", "left", "right", "back":
			return action.Params{key: args[0]}, true
		}
		return nil, false
	}
}

// #endregion
