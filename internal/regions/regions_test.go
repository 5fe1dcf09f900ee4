package regions

import (
	"errors"
	"testing"

	"github.com/jwhitfield/pixelpilot/internal/frame"
)

func patch(w, h int, value uint8) *frame.Frame {
	return frame.New(w, h, value)
}

func testSpec() Spec {
	return Spec{
		FrameW:    32,
		FrameH:    32,
		Threshold: 2.0,
		Regions: []Def{
			{Name: "corner", Rect: frame.Rect{X: 0, Y: 0, W: 4, H: 4}},
		},
		MultiRegions: []Def{
			{Name: "strip", Rect: frame.Rect{X: 0, Y: 28, W: 32, H: 4}},
		},
		Targets: map[string][]string{
			"strip": {"cursor_left", "cursor_right"},
		},
	}
}

func testSamples() MapSource {
	return MapSource{
		"corner":             patch(4, 4, 200),
		"strip/cursor_left":  patch(32, 4, 40),
		"strip/cursor_right": patch(32, 4, 90),
	}
}

func TestMergeDefs(t *testing.T) {
	base := []Def{
		{Name: "a", Rect: frame.Rect{X: 0, Y: 0, W: 2, H: 2}},
		{Name: "b", Rect: frame.Rect{X: 2, Y: 0, W: 2, H: 2}},
		{Name: "c", Rect: frame.Rect{X: 4, Y: 0, W: 2, H: 2}},
	}
	override := []Def{
		{Name: "b", Rect: frame.Rect{X: 8, Y: 8, W: 4, H: 4}},
	}

	merged := MergeDefs(base, override)
	if len(merged) != 3 {
		t.Fatalf("merged length: got %d, want 3", len(merged))
	}
	byName := make(map[string]Def)
	for _, d := range merged {
		byName[d.Name] = d
	}
	if got := byName["b"].Rect; got != (frame.Rect{X: 8, Y: 8, W: 4, H: 4}) {
		t.Errorf("override geometry not applied: got %+v", got)
	}
	if got := byName["a"].Rect; got != base[0].Rect {
		t.Errorf("non-overridden region changed: got %+v", got)
	}
	if got := byName["c"].Rect; got != base[2].Rect {
		t.Errorf("non-overridden region changed: got %+v", got)
	}

	// Same result regardless of base ordering
	reversed := []Def{base[2], base[1], base[0]}
	merged2 := MergeDefs(reversed, override)
	byName2 := make(map[string]Def)
	for _, d := range merged2 {
		byName2[d.Name] = d
	}
	for name := range byName {
		if byName[name] != byName2[name] {
			t.Errorf("merge depends on list ordering for %q", name)
		}
	}
}

func TestMergeDefsEmptyOverride(t *testing.T) {
	base := []Def{{Name: "a", Rect: frame.Rect{W: 1, H: 1}}}
	if got := MergeDefs(base, nil); len(got) != 1 || got[0].Name != "a" {
		t.Errorf("empty override should preserve base: got %+v", got)
	}
}

func TestMergeTargets(t *testing.T) {
	base := map[string][]string{"strip": {"a"}}
	override := map[string][]string{"strip": {"b"}, "other": {"c"}}
	merged := MergeTargets(base, override)
	if len(merged["strip"]) != 2 || merged["strip"][0] != "a" || merged["strip"][1] != "b" {
		t.Errorf("strip targets: got %v, want [a b]", merged["strip"])
	}
	if len(merged["other"]) != 1 {
		t.Errorf("other targets: got %v, want [c]", merged["other"])
	}
	if len(base["strip"]) != 1 {
		t.Error("merge mutated the base map")
	}
}

func TestCaptureAndMatch(t *testing.T) {
	cat, err := Build(testSpec(), testSamples())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	f := frame.New(32, 32, 0)
	// Paint the corner region to match its sample
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f.Pix[y*32+x] = 200
		}
	}

	got, err := cat.Capture(f, "corner")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if got.W != 4 || got.H != 4 || got.Pix[0] != 200 {
		t.Errorf("capture content wrong: %dx%d first=%d", got.W, got.H, got.Pix[0])
	}

	ok, err := cat.Matches(f, "corner", "")
	if err != nil || !ok {
		t.Errorf("corner should match its sample: ok=%v err=%v", ok, err)
	}

	// Perturb within threshold (mean diff 1 <= 2.0)
	f.Pix[0] = 184
	ok, _ = cat.Matches(f, "corner", "")
	if !ok {
		t.Error("corner should match within threshold")
	}

	// Perturb beyond threshold
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f.Pix[y*32+x] = 0
		}
	}
	ok, _ = cat.Matches(f, "corner", "")
	if ok {
		t.Error("corner should not match a blank capture")
	}
}

func TestMultiTargetMatch(t *testing.T) {
	cat, err := Build(testSpec(), testSamples())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	f := frame.New(32, 32, 0)
	for y := 28; y < 32; y++ {
		for x := 0; x < 32; x++ {
			f.Pix[y*32+x] = 90
		}
	}

	ok, err := cat.Matches(f, "strip", "cursor_right")
	if err != nil || !ok {
		t.Errorf("cursor_right should match: ok=%v err=%v", ok, err)
	}
	ok, _ = cat.Matches(f, "strip", "cursor_left")
	if ok {
		t.Error("cursor_left should not match")
	}

	// Target "" on a multi-target region matches any target
	ok, err = cat.Matches(f, "strip", "")
	if err != nil || !ok {
		t.Errorf("any-target match should succeed: ok=%v err=%v", ok, err)
	}
}

func TestUnknownLookups(t *testing.T) {
	cat, err := Build(testSpec(), testSamples())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	f := frame.New(32, 32, 0)

	if _, err := cat.Capture(f, "nope"); err == nil {
		t.Error("capture of unknown region should fail")
	} else {
		var ure *UnknownRegionError
		if !errors.As(err, &ure) {
			t.Errorf("want UnknownRegionError, got %T", err)
		}
	}

	if _, err := cat.Matches(f, "strip", "nope"); err == nil {
		t.Error("match of unknown target should fail")
	} else {
		var ute *UnknownTargetError
		if !errors.As(err, &ute) {
			t.Errorf("want UnknownTargetError, got %T", err)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("out-of-bounds-region", func(t *testing.T) {
		spec := testSpec()
		spec.Regions = append(spec.Regions, Def{Name: "oob", Rect: frame.Rect{X: 30, Y: 30, W: 8, H: 8}})
		if _, err := Build(spec, testSamples()); err == nil {
			t.Error("expected ConfigError for out-of-bounds region")
		}
	})
	t.Run("missing-sample", func(t *testing.T) {
		samples := testSamples()
		delete(samples, "corner")
		if _, err := Build(testSpec(), samples); err == nil {
			t.Error("expected ConfigError for missing sample")
		}
	})
	t.Run("sample-size-mismatch", func(t *testing.T) {
		samples := testSamples()
		samples["corner"] = patch(3, 3, 200)
		if _, err := Build(testSpec(), samples); err == nil {
			t.Error("expected ConfigError for sample size mismatch")
		}
	})
	t.Run("targets-for-undefined-region", func(t *testing.T) {
		spec := testSpec()
		spec.Targets["ghost"] = []string{"x"}
		if _, err := Build(spec, testSamples()); err == nil {
			t.Error("expected ConfigError for targets on undefined region")
		}
	})
	t.Run("duplicate-region", func(t *testing.T) {
		spec := testSpec()
		spec.Regions = append(spec.Regions, spec.Regions[0])
		if _, err := Build(spec, testSamples()); err == nil {
			t.Error("expected ConfigError for duplicate region")
		}
	})
}
