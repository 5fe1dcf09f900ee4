package control

import (
	"strings"
	"testing"

	"github.com/jwhitfield/pixelpilot/internal/action"
)

func TestStringToAction(t *testing.T) {
	c := New()
	cases := []struct {
		name   string
		input  string
		action string
		params action.Params
	}{
		{"move-steps", "move_steps(right,3)", "move_steps", action.Params{"direction": "right", "steps": 3}},
		{"move-steps-spaced", "  MOVE_STEPS( Up , 12 )  ", "move_steps", action.Params{"direction": "up", "steps": 12}},
		{"move-grid", "move_grid(-2,5)", "move_grid", action.Params{"x_steps": -2, "y_steps": 5}},
		{"menu", "menu(confirm)", "menu", action.Params{"menu_action": "confirm"}},
		{"puzzle", "puzzle(back)", "puzzle", action.Params{"puzzle_action": "back"}},
		{"open-menu-plain", "open_menu()", "open_menu", action.Params{}},
		{"open-menu-section", "open_menu(case_notes)", "open_menu", action.Params{"option": "case_notes"}},
		{"interact", "interact()", "interact", action.Params{}},
		{"advance-dialogue", "advance_dialogue()", "advance_dialogue", action.Params{}},
		{"tick", "tick_until_stable()", "tick_until_stable", action.Params{}},
		{"tick-budget", "tick_until_stable(12)", "tick_until_stable", action.Params{"max_ticks": 12}},
		{"trailing-junk-ignored", "interact() please", "interact", action.Params{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act, params := c.StringToAction(tc.input)
			if act == nil {
				t.Fatalf("StringToAction(%q) = nil", tc.input)
			}
			if act.Name() != tc.action {
				t.Fatalf("action = %s, want %s", act.Name(), tc.action)
			}
			if len(params) != len(tc.params) {
				t.Fatalf("params = %v, want %v", params, tc.params)
			}
			for k, want := range tc.params {
				if params[k] != want {
					t.Errorf("params[%s] = %v, want %v", k, params[k], want)
				}
			}
		})
	}
}

func TestStringToActionRejects(t *testing.T) {
	c := New()
	inputs := []string{
		"",
		"move_steps",
		"move_steps right 3",
		"fly(up,3)",
		"move_steps(diagonal,3)",
		"move_steps(up,0)",
		"move_steps(up,-2)",
		"move_steps(up,many)",
		"move_grid(1)",
		"move_grid(a,b)",
		"menu()",
		"menu(up,down)",
		"menu(sideways)",
		"open_menu(settings)",
		"interact(now)",
		"tick_until_stable(0)",
	}
	for _, input := range inputs {
		act, params := c.StringToAction(input)
		if act != nil || params != nil {
			t.Errorf("StringToAction(%q) = (%v, %v), want (nil, nil)", input, act, params)
		}
	}
}

func TestParsedParamsAreValidAndEncodable(t *testing.T) {
	c := New()
	commands := []string{
		"move_steps(left,7)",
		"move_grid(3,-3)",
		"menu(down)",
		"puzzle(confirm)",
		"open_menu(evidence)",
	}
	for _, cmd := range commands {
		act, params := c.StringToAction(cmd)
		if act == nil {
			t.Fatalf("parse %q failed", cmd)
		}
		if _, ok := act.Encode(params); !ok {
			t.Errorf("%q: parsed params do not encode into the action space", cmd)
		}
	}
}

func TestActionStrings(t *testing.T) {
	c := New()
	docs := c.ActionStrings()
	if len(docs) != len(c.Actions()) {
		t.Fatalf("doc count %d != action count %d", len(docs), len(c.Actions()))
	}
	for _, act := range c.Actions() {
		found := false
		for _, doc := range docs {
			if strings.HasPrefix(doc, act.Name()+"(") {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no doc line for %s", act.Name())
		}
	}
}

func TestLookup(t *testing.T) {
	c := New()
	if _, ok := c.Lookup("move_steps"); !ok {
		t.Error("move_steps should be registered")
	}
	if _, ok := c.Lookup("fly"); ok {
		t.Error("fly should not be registered")
	}
}
