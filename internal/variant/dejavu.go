package variant

import (
	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/regions"
)

func init() {
	Register(DejaVu())
}

// #region common-tables

// commonRegions are the single-target indicator regions shared by the
// investigation titles. Rectangles are in 160x144 Game Boy screen pixels.
func commonRegions() []regions.Def {
	return []regions.Def{
		{Name: "dialogue_bottom_right", Rect: frame.Rect{X: 150, Y: 134, W: 10, H: 10}},
		{Name: "dialogue_box_bottom_left", Rect: frame.Rect{X: 0, Y: 134, W: 10, H: 10}},
		{Name: "menu_top_left", Rect: frame.Rect{X: 0, Y: 0, W: 8, H: 8}},
		{Name: "case_notes_title_top", Rect: frame.Rect{X: 0, Y: 0, W: 30, H: 8}},
		{Name: "evidence_menu_header", Rect: frame.Rect{X: 60, Y: 0, W: 30, H: 8}},
		{Name: "location_menu_title", Rect: frame.Rect{X: 80, Y: 0, W: 40, H: 8}},
		{Name: "suspect_list_area", Rect: frame.Rect{X: 0, Y: 20, W: 80, H: 40}},
		{Name: "evidence_icon_area", Rect: frame.Rect{X: 80, Y: 20, W: 80, H: 40}},
		{Name: "deduction_highlight", Rect: frame.Rect{X: 80, Y: 70, W: 20, H: 20}},
	}
}

// commonMultiRegions are the shared multi-target rectangles. Regions with no
// declared targets (the screen quadrants, the dialogue box areas) exist only
// to be captured and diffed, never template-matched.
func commonMultiRegions() []regions.Def {
	return []regions.Def{
		{Name: "screen", Rect: frame.Rect{X: 0, Y: 0, W: 150, H: 140}},
		{Name: "dialogue_box_middle", Rect: frame.Rect{X: 10, Y: 105, W: 120, H: 30}},
		{Name: "dialogue_box_full", Rect: frame.Rect{X: 5, Y: 100, W: 150, H: 40}},
		{Name: "screen_bottom_half", Rect: frame.Rect{X: 5, Y: 70, W: 150, H: 70}},
		{Name: "screen_quadrant_1", Rect: frame.Rect{X: 85, Y: 0, W: 60, H: 60}},
		{Name: "screen_quadrant_2", Rect: frame.Rect{X: 0, Y: 0, W: 60, H: 60}},
		{Name: "screen_quadrant_3", Rect: frame.Rect{X: 0, Y: 70, W: 60, H: 70}},
		{Name: "screen_quadrant_4", Rect: frame.Rect{X: 85, Y: 70, W: 60, H: 70}},
		{Name: "menu_navigation_strip", Rect: frame.Rect{X: 0, Y: 0, W: 160, H: 10}},
		{Name: "menu_box_strip", Rect: frame.Rect{X: 0, Y: 0, W: 160, H: 140}},
		{Name: "clue_text_area", Rect: frame.Rect{X: 0, Y: 60, W: 160, H: 30}},
		{Name: "verdict_announcement", Rect: frame.Rect{X: 40, Y: 60, W: 80, H: 20}},
		{Name: "puzzle_menu_corner", Rect: frame.Rect{X: 150, Y: 0, W: 10, H: 10}},
	}
}

func commonTargets() map[string][]string {
	return map[string][]string{
		"clue_text_area": {
			"clue_acquired",
			"wrong_verdict",
			"correct_verdict",
			"suspect_alibi_confirmed",
		},
		"verdict_announcement": {
			"case_solved",
			"case_failed",
			"new_case_available",
		},
		"puzzle_menu_corner": {
			"puzzle_active",
			"puzzle_hint_available",
		},
	}
}

// #endregion

// #region deja-vu

// dejaVuRegions replace or extend the common single-target table for the
// Deja Vu menu layout.
func dejaVuRegions() []regions.Def {
	return []regions.Def{
		{Name: "case_notes_header_area", Rect: frame.Rect{X: 0, Y: 0, W: 40, H: 12}},
		{Name: "evidence_list_top", Rect: frame.Rect{X: 80, Y: 0, W: 40, H: 12}},
		{Name: "location_map_header", Rect: frame.Rect{X: 80, Y: 0, W: 50, H: 12}},
		{Name: "suspect_name_region", Rect: frame.Rect{X: 0, Y: 16, W: 60, H: 20}},
		{Name: "clue_received_indicator", Rect: frame.Rect{X: 0, Y: 72, W: 40, H: 20}},
	}
}

// Deja Vu's navigation strip is two pixels taller than the shared default.
func dejaVuMultiRegions() []regions.Def {
	return []regions.Def{
		{Name: "menu_navigation_strip", Rect: frame.Rect{X: 0, Y: 0, W: 160, H: 12}},
	}
}

// dejaVuTargets extend the common target lists with the captures specific to
// Deja Vu I & II.
func dejaVuTargets() map[string][]string {
	return map[string][]string{
		"clue_text_area": {
			"clue_obtained",
			"suspect_questioned",
			"alibi_verified",
			"contradiction_found",
		},
		"verdict_announcement": {
			"correct_solution",
			"wrong_accusation",
			"case_incomplete",
			"case_passed",
		},
	}
}

// DejaVu is the profile for Deja Vu I & II on the Game Boy Color.
func DejaVu() Profile {
	return Profile{
		Name:   "deja_vu",
		FrameW: 160,
		FrameH: 144,

		// 16px walk steps, player sprite anchored near screen center.
		Grid: frame.Grid{CellW: 16, CellH: 16, AnchorX: 72, AnchorY: 64},

		Threshold: 2.0,

		Regions:      regions.MergeDefs(commonRegions(), dejaVuRegions()),
		MultiRegions: regions.MergeDefs(commonMultiRegions(), dejaVuMultiRegions()),
		Targets:      regions.MergeTargets(commonTargets(), dejaVuTargets()),

		Hooks: map[string]HookSpec{
			"case_notes": {Region: "case_notes_header_area"},
			"evidence":   {Region: "evidence_list_top"},
			"location":   {Region: "location_menu_title"},
		},

		Classifier: classify.Config{
			PuzzleRegions: []string{"puzzle_menu_corner", "deduction_highlight"},
			MenuHooks:     []string{"case_notes", "evidence", "location"},
			MenuRegions: []string{
				"menu_top_left",
				"case_notes_title_top",
				"evidence_menu_header",
				"location_menu_title",
			},
			DialogueRegion:    "dialogue_bottom_right",
			DialogueBoxRegion: "dialogue_box_full",
			CursorRegion:      "menu_box_strip",
			CursorTarget:      "cursor_on_options",
		},
	}
}

// #endregion
