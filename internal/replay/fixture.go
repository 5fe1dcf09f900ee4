// Package replay runs recorded command sequences against a scripted frame
// source and compares the outcome codes with what the fixture expects. A
// fixture is fully self-contained: it carries the variant geometry, the
// region catalog with inline reference samples, the frame script, and the
// command list.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/emu"
	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/movement"
	"github.com/jwhitfield/pixelpilot/internal/regions"
)

// #region pixels

// Pixels encodes a grayscale buffer as ASCII rows: one string per pixel row,
// space-separated decimal values 0-255.
type Pixels []string

// Frame decodes the rows into a frame. Ragged rows and out-of-range values
// are errors.
func (p Pixels) Frame() (*frame.Frame, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("replay: empty pixel rows")
	}
	w := -1
	var pix []uint8
	for i, row := range p {
		fields := strings.Fields(row)
		if w < 0 {
			w = len(fields)
			if w == 0 {
				return nil, fmt.Errorf("replay: pixel row 0 is empty")
			}
			pix = make([]uint8, 0, w*len(p))
		}
		if len(fields) != w {
			return nil, fmt.Errorf("replay: pixel row %d has %d values, want %d", i, len(fields), w)
		}
		for _, s := range fields {
			v, err := strconv.Atoi(s)
			if err != nil || v < 0 || v > 255 {
				return nil, fmt.Errorf("replay: bad pixel value %q in row %d", s, i)
			}
			pix = append(pix, uint8(v))
		}
	}
	f, err := frame.FromPixels(w, len(p), pix)
	if err != nil {
		return nil, fmt.Errorf("replay: decode pixels: %w", err)
	}
	return f, nil
}

// EncodePixels renders a frame as ASCII rows, the inverse of Pixels.Frame.
func EncodePixels(f *frame.Frame) Pixels {
	rows := make(Pixels, 0, f.H)
	var b strings.Builder
	for y := 0; y < f.H; y++ {
		b.Reset()
		for x := 0; x < f.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(f.Pix[y*f.W+x])))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// #endregion

// #region fixture-types

// TargetDef is one named reference sample of a multi-target region.
type TargetDef struct {
	Name   string `json:"name"`
	Sample Pixels `json:"sample"`
}

// RegionDef declares one catalog region with its inline reference samples.
// Single-target regions carry Sample; multi-target regions carry Targets.
type RegionDef struct {
	Name      string      `json:"name"`
	Rect      frame.Rect  `json:"rect"`
	Threshold float64     `json:"threshold,omitempty"`
	Sample    Pixels      `json:"sample,omitempty"`
	Targets   []TargetDef `json:"targets,omitempty"`
}

// GridDef is the player-anchored cell geometry.
type GridDef struct {
	CellW   int `json:"cell_w"`
	CellH   int `json:"cell_h"`
	AnchorX int `json:"anchor_x"`
	AnchorY int `json:"anchor_y"`
}

// ClassifierDef wires the catalog regions into the mode classifier. Fixtures
// carry no capability hooks; menu detection uses the indicator regions only.
type ClassifierDef struct {
	PuzzleRegions     []string `json:"puzzle_regions"`
	MenuRegions       []string `json:"menu_regions"`
	DialogueRegion    string   `json:"dialogue_region"`
	DialogueBoxRegion string   `json:"dialogue_box_region"`
	CursorRegion      string   `json:"cursor_region"`
	CursorTarget      string   `json:"cursor_target"`
}

// VariantDef is the fixture's self-contained variant description.
type VariantDef struct {
	FrameW       int           `json:"frame_w"`
	FrameH       int           `json:"frame_h"`
	Grid         GridDef       `json:"grid"`
	Threshold    float64       `json:"threshold"`
	Epsilon      float64       `json:"epsilon,omitempty"`
	Quadrants    []string      `json:"quadrants,omitempty"`
	Regions      []RegionDef   `json:"regions"`
	MultiRegions []RegionDef   `json:"multi_regions"`
	Classifier   ClassifierDef `json:"classifier"`
}

// StepDef is one scripted emulator response.
type StepDef struct {
	Frames []Pixels `json:"frames"`
	Done   bool     `json:"done,omitempty"`
}

// CommandDef pairs a command string with the outcome code it must produce.
type CommandDef struct {
	Command string `json:"command"`
	Expect  int    `json:"expect"`
}

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description  string       `json:"description"`
	Variant      VariantDef   `json:"variant"`
	InitialFrame Pixels       `json:"initial_frame"`
	Steps        []StepDef    `json:"steps"`
	Commands     []CommandDef `json:"commands"`
}

// #endregion

// #region loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &fx, nil
}

// #endregion

// #region build

// Env is the fixture's variant instantiated: loaded catalog, classifier, and
// movement judge. Judge is nil when the fixture declares no quadrants and
// its catalog has none of the default quadrant regions.
type Env struct {
	Catalog    *regions.Catalog
	Classifier *classify.Classifier
	Judge      *movement.Judge
	Epsilon    float64
}

// Build validates the variant description and loads every inline sample.
func (fx *Fixture) Build() (*Env, error) {
	v := fx.Variant
	spec := regions.Spec{
		FrameW:    v.FrameW,
		FrameH:    v.FrameH,
		Threshold: v.Threshold,
		Targets:   map[string][]string{},
	}
	src := regions.MapSource{}

	for _, rd := range v.Regions {
		spec.Regions = append(spec.Regions, regions.Def{Name: rd.Name, Rect: rd.Rect, Threshold: rd.Threshold})
		sample, err := rd.Sample.Frame()
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", rd.Name, err)
		}
		src[rd.Name] = sample
	}
	for _, rd := range v.MultiRegions {
		spec.MultiRegions = append(spec.MultiRegions, regions.Def{Name: rd.Name, Rect: rd.Rect, Threshold: rd.Threshold})
		for _, tg := range rd.Targets {
			spec.Targets[rd.Name] = append(spec.Targets[rd.Name], tg.Name)
			sample, err := tg.Sample.Frame()
			if err != nil {
				return nil, fmt.Errorf("region %q target %q: %w", rd.Name, tg.Name, err)
			}
			src[rd.Name+"/"+tg.Name] = sample
		}
	}

	catalog, err := regions.Build(spec, src)
	if err != nil {
		return nil, err
	}
	classifier, err := classify.New(catalog, classify.Config{
		PuzzleRegions:     v.Classifier.PuzzleRegions,
		MenuRegions:       v.Classifier.MenuRegions,
		DialogueRegion:    v.Classifier.DialogueRegion,
		DialogueBoxRegion: v.Classifier.DialogueBoxRegion,
		CursorRegion:      v.Classifier.CursorRegion,
		CursorTarget:      v.Classifier.CursorTarget,
	}, nil)
	if err != nil {
		return nil, err
	}

	grid := frame.Grid{CellW: v.Grid.CellW, CellH: v.Grid.CellH, AnchorX: v.Grid.AnchorX, AnchorY: v.Grid.AnchorY}
	names := v.Quadrants
	if len(names) == 0 {
		if _, ok := catalog.Region(movement.DefaultQuadrants[0]); ok {
			names = movement.DefaultQuadrants
		}
	}
	var judge *movement.Judge
	if len(names) > 0 {
		judge, err = movement.FromCatalog(catalog, grid, names, v.Epsilon)
		if err != nil {
			return nil, err
		}
	}

	return &Env{
		Catalog:    catalog,
		Classifier: classifier,
		Judge:      judge,
		Epsilon:    v.Epsilon,
	}, nil
}

// Source builds the scripted frame source from the fixture's frame script.
func (fx *Fixture) Source() (*emu.ScriptedSource, error) {
	initial, err := fx.InitialFrame.Frame()
	if err != nil {
		return nil, fmt.Errorf("initial frame: %w", err)
	}
	steps := make([]emu.ScriptedStep, 0, len(fx.Steps))
	for i, sd := range fx.Steps {
		var frames []*frame.Frame
		for j, p := range sd.Frames {
			f, err := p.Frame()
			if err != nil {
				return nil, fmt.Errorf("step %d frame %d: %w", i, j, err)
			}
			frames = append(frames, f)
		}
		steps = append(steps, emu.ScriptedStep{Frames: frames, Done: sd.Done})
	}
	return emu.NewScripted(initial, steps...), nil
}

// #endregion
