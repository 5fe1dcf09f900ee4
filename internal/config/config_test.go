package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jwhitfield/pixelpilot/internal/variant"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExplicitPath(t *testing.T) {
	path := writeConfig(t, `
variant: deja_vu
rom_data_path: /data/captures/deja_vu
epsilon: 0.05
threshold: 3.5
grid:
  cell_w: 8
  cell_h: 8
  anchor_x: 80
  anchor_y: 72
budgets:
  max_steps: 10
  menu_nav_max_steps: 4
  stable_max_ticks: 15
regions:
  - name: dialogue_bottom_right
    rect: {x: 148, y: 132, w: 12, h: 12}
  - name: save_prompt_corner
    rect: {x: 0, y: 130, w: 14, h: 14}
    threshold: 1.0
`)
	cfg, err := Load("deja_vu", path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RomDataPath != "/data/captures/deja_vu" {
		t.Errorf("rom_data_path = %q", cfg.RomDataPath)
	}
	if cfg.Epsilon != 0.05 || cfg.Threshold != 3.5 {
		t.Errorf("tolerances = %v/%v", cfg.Epsilon, cfg.Threshold)
	}
	if cfg.Grid == nil || cfg.Grid.CellW != 8 || cfg.Grid.AnchorY != 72 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if b := cfg.ActionBudgets(); b.MaxSteps != 10 || b.MenuNav != 4 || b.StableTicks != 15 {
		t.Errorf("budgets = %+v", b)
	}
	if len(cfg.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(cfg.Regions))
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load("deja_vu", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestLoadMalformedFails(t *testing.T) {
	path := writeConfig(t, "variant: [broken")
	if _, err := Load("deja_vu", path); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestLoadNoFileDefersToProfile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("deja_vu", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Variant != "deja_vu" {
		t.Errorf("variant = %q", cfg.Variant)
	}
	if cfg.AssetRoot() != filepath.Join("rom_data", "deja_vu") {
		t.Errorf("asset root = %q", cfg.AssetRoot())
	}
}

func TestLoadSearchesConfigsDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "rom_data_path: ./captures\n"
	if err := os.WriteFile(filepath.Join(dir, "configs", "deja_vu.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("deja_vu", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RomDataPath != "./captures" {
		t.Errorf("rom_data_path = %q", cfg.RomDataPath)
	}
	if cfg.AssetRoot() != "./captures" {
		t.Errorf("asset root = %q", cfg.AssetRoot())
	}
}

func TestApplyOverrides(t *testing.T) {
	path := writeConfig(t, `
epsilon: 0.02
regions:
  - name: dialogue_bottom_right
    rect: {x: 148, y: 132, w: 12, h: 12}
  - name: save_prompt_corner
    rect: {x: 0, y: 130, w: 14, h: 14}
`)
	cfg, err := Load("deja_vu", path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	p := cfg.Apply(variant.DejaVu())
	if p.Epsilon != 0.02 {
		t.Errorf("epsilon = %v", p.Epsilon)
	}
	// Override replaces the profile's rect; threshold stays overridable.
	var seenDialogue, seenNew, seenMenu bool
	for _, d := range p.Regions {
		switch d.Name {
		case "dialogue_bottom_right":
			seenDialogue = true
			if d.Rect.X != 148 || d.Rect.W != 12 {
				t.Errorf("dialogue_bottom_right not replaced: %+v", d.Rect)
			}
		case "save_prompt_corner":
			seenNew = true
		case "menu_top_left":
			seenMenu = true
		}
	}
	if !seenDialogue || !seenNew || !seenMenu {
		t.Errorf("merge lost entries: dialogue=%v new=%v base=%v", seenDialogue, seenNew, seenMenu)
	}
}

func TestApplyZeroConfigKeepsProfile(t *testing.T) {
	base := variant.DejaVu()
	p := Config{}.Apply(base)
	if p.FrameW != base.FrameW || p.Threshold != base.Threshold || len(p.Regions) != len(base.Regions) {
		t.Error("zero config must not change the profile")
	}
	if p.Grid != base.Grid {
		t.Errorf("grid changed: %+v", p.Grid)
	}
}
