package classify

import (
	"testing"

	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/regions"
)

const (
	puzzleValue = 10
	menuValue   = 20
	arrowValue  = 30
	cursorValue = 40
	hookValue   = 77
)

var (
	puzzleRect = frame.Rect{X: 0, Y: 0, W: 4, H: 4}
	menuRect   = frame.Rect{X: 60, Y: 0, W: 4, H: 4}
	arrowRect  = frame.Rect{X: 0, Y: 60, W: 4, H: 4}
	boxRect    = frame.Rect{X: 8, Y: 40, W: 48, H: 16}
	stripRect  = frame.Rect{X: 0, Y: 56, W: 64, H: 4}
)

func testCatalog(t *testing.T) *regions.Catalog {
	t.Helper()
	spec := regions.Spec{
		FrameW:    64,
		FrameH:    64,
		Threshold: 2.0,
		Regions: []regions.Def{
			{Name: "puzzle_corner", Rect: puzzleRect},
			{Name: "menu_box", Rect: menuRect},
			{Name: "dialogue_arrow", Rect: arrowRect},
			{Name: "dialogue_box", Rect: boxRect},
		},
		MultiRegions: []regions.Def{
			{Name: "menu_strip", Rect: stripRect},
		},
		Targets: map[string][]string{
			"menu_strip": {"cursor_on_options"},
		},
	}
	samples := regions.MapSource{
		"puzzle_corner":                patch(puzzleRect, puzzleValue),
		"menu_box":                     patch(menuRect, menuValue),
		"dialogue_arrow":               patch(arrowRect, arrowValue),
		"dialogue_box":                 patch(boxRect, 255),
		"menu_strip/cursor_on_options": patch(stripRect, cursorValue),
	}
	cat, err := regions.Build(spec, samples)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func patch(r frame.Rect, value uint8) *frame.Frame {
	return frame.New(r.W, r.H, value)
}

func testConfig() Config {
	return Config{
		PuzzleRegions:     []string{"puzzle_corner"},
		MenuHooks:         []string{"case_notes"},
		MenuRegions:       []string{"menu_box"},
		DialogueRegion:    "dialogue_arrow",
		DialogueBoxRegion: "dialogue_box",
		CursorRegion:      "menu_strip",
		CursorTarget:      "cursor_on_options",
	}
}

func testHooks() map[string]Hook {
	return map[string]Hook{
		// Case notes stand-in: a marker pixel in the middle of the screen.
		"case_notes": func(f *frame.Frame) bool {
			return f.At(32, 32) == hookValue
		},
	}
}

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(testCatalog(t), testConfig(), testHooks())
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	return c
}

func paint(f *frame.Frame, r frame.Rect, value uint8) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			f.Pix[y*f.W+x] = value
		}
	}
}

// blank produces a frame that matches no region at all.
func blank() *frame.Frame {
	return frame.New(64, 64, 200)
}

func TestClassifyFreeRoam(t *testing.T) {
	c := newClassifier(t)
	f := blank()
	for _, trust := range []bool{false, true} {
		if got := c.Classify(f, trust); got != FreeRoam {
			t.Errorf("Classify(blank, trust=%v) = %v, want free_roam", trust, got)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := newClassifier(t)

	// All indicators lit at once: puzzle wins.
	f := blank()
	paint(f, puzzleRect, puzzleValue)
	paint(f, menuRect, menuValue)
	paint(f, arrowRect, arrowValue)
	if got := c.Classify(f, false); got != InPuzzle {
		t.Errorf("puzzle+menu+dialogue = %v, want in_puzzle", got)
	}

	// Menu and dialogue: menu wins.
	f = blank()
	paint(f, menuRect, menuValue)
	paint(f, arrowRect, arrowValue)
	if got := c.Classify(f, false); got != InMenu {
		t.Errorf("menu+dialogue = %v, want in_menu", got)
	}

	// Dialogue only.
	f = blank()
	paint(f, arrowRect, arrowValue)
	if got := c.Classify(f, false); got != InDialogue {
		t.Errorf("dialogue = %v, want in_dialogue", got)
	}
}

func TestTrustPathsAgree(t *testing.T) {
	c := newClassifier(t)

	frames := map[string]*frame.Frame{
		"blank":    blank(),
		"puzzle":   blank(),
		"menu":     blank(),
		"dialogue": blank(),
		"all":      blank(),
	}
	paint(frames["puzzle"], puzzleRect, puzzleValue)
	paint(frames["menu"], menuRect, menuValue)
	paint(frames["dialogue"], arrowRect, arrowValue)
	paint(frames["all"], puzzleRect, puzzleValue)
	paint(frames["all"], menuRect, menuValue)
	paint(frames["all"], arrowRect, arrowValue)

	for name, f := range frames {
		full := c.Classify(f, false)
		fast := c.Classify(f, true)
		if full != fast {
			t.Errorf("%s: trust paths disagree: full=%v fast=%v", name, full, fast)
		}
	}
}

func TestMenuHook(t *testing.T) {
	c := newClassifier(t)
	f := blank()
	f.Pix[32*64+32] = hookValue
	if !c.IsInMenu(f) {
		t.Error("hook marker should report in_menu")
	}
	if got := c.Classify(f, false); got != InMenu {
		t.Errorf("hook marker Classify = %v, want in_menu", got)
	}
	if !c.Hook("case_notes", f) {
		t.Error("named hook should fire on marker frame")
	}
	if c.Hook("nonexistent", f) {
		t.Error("unknown hook should report false")
	}
}

func TestDialogueBoxEmpty(t *testing.T) {
	c := newClassifier(t)

	f := blank()
	paint(f, boxRect, 255)
	if !c.DialogueBoxEmpty(f) {
		t.Error("all-white box should be empty")
	}

	// A single pixel at 254 means text is present: the check is strict.
	f.Pix[boxRect.Y*64+boxRect.X] = 254
	if c.DialogueBoxEmpty(f) {
		t.Error("box with one dimmed pixel should not be empty")
	}
}

func TestCursorOnMenuOptions(t *testing.T) {
	c := newClassifier(t)

	f := blank()
	if c.CursorOnMenuOptions(f) {
		t.Error("blank frame should not report cursor on options")
	}
	paint(f, stripRect, cursorValue)
	if !c.CursorOnMenuOptions(f) {
		t.Error("painted strip should report cursor on options")
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{
		FreeRoam:   "free_roam",
		InDialogue: "in_dialogue",
		InMenu:     "in_menu",
		InPuzzle:   "in_puzzle",
		Mode(9):    "mode(9)",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}

func TestNewValidation(t *testing.T) {
	cat := testCatalog(t)

	cfg := testConfig()
	cfg.PuzzleRegions = []string{"no_such_region"}
	if _, err := New(cat, cfg, testHooks()); err == nil {
		t.Error("unknown region should fail construction")
	}

	cfg = testConfig()
	cfg.MenuHooks = []string{"no_such_hook"}
	if _, err := New(cat, cfg, testHooks()); err == nil {
		t.Error("unknown hook should fail construction")
	}
}
