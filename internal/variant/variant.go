// Package variant holds the per-game profiles: which screen regions exist,
// how the classifier probes them, and the grid geometry the movement judge
// runs on. Profiles register themselves at init; lookup is by name.
package variant

import (
	"fmt"
	"sort"

	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/movement"
	"github.com/jwhitfield/pixelpilot/internal/regions"
)

// #region profile

// HookSpec declares a variant capability check as a region match: the hook
// fires when the named region matches the named target ("" for the implicit
// target of a single-target region).
type HookSpec struct {
	Region string
	Target string
}

// Profile is the full static description of one supported game.
type Profile struct {
	Name string

	FrameW int
	FrameH int

	// Grid is the player-anchored cell geometry used by the movement judge.
	Grid frame.Grid

	// Threshold is the default region match threshold; Epsilon is the
	// per-pixel tolerance for frame differencing. Zero Epsilon means exact.
	Threshold float64
	Epsilon   float64

	Regions      []regions.Def
	MultiRegions []regions.Def
	Targets      map[string][]string

	Hooks map[string]HookSpec

	Classifier classify.Config
}

// #endregion

// #region spec

// Spec assembles the catalog spec for the profile. The classifier's cursor
// region must be declared multi-target; its cursor target is force-appended
// so the "cursor on options" probe always has a reference sample to miss or
// hit, whatever the variant's own target tables say.
func (p Profile) Spec() (regions.Spec, error) {
	cursor := p.Classifier.CursorRegion
	found := false
	for _, d := range p.MultiRegions {
		if d.Name == cursor {
			found = true
			break
		}
	}
	if !found {
		return regions.Spec{}, &regions.ConfigError{
			Reason: fmt.Sprintf("variant %q: cursor region %q is not a declared multi-target region", p.Name, cursor),
		}
	}

	targets := make(map[string][]string, len(p.Targets)+1)
	for name, ts := range p.Targets {
		targets[name] = append([]string(nil), ts...)
	}
	if !contains(targets[cursor], p.Classifier.CursorTarget) {
		targets[cursor] = append(targets[cursor], p.Classifier.CursorTarget)
	}

	return regions.Spec{
		FrameW:       p.FrameW,
		FrameH:       p.FrameH,
		Threshold:    p.Threshold,
		Regions:      p.Regions,
		MultiRegions: p.MultiRegions,
		Targets:      targets,
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// #endregion

// #region bundle

// Bundle is a profile instantiated against real reference samples: the
// loaded catalog plus the classifier and movement judge wired to it.
type Bundle struct {
	Profile    Profile
	Catalog    *regions.Catalog
	Classifier *classify.Classifier
	Judge      *movement.Judge
}

// Build loads every reference sample for the profile and wires up the
// classifier and movement judge. Any missing asset, bad geometry, or
// dangling region reference is a ConfigError.
func Build(p Profile, src regions.SampleSource) (*Bundle, error) {
	spec, err := p.Spec()
	if err != nil {
		return nil, err
	}
	catalog, err := regions.Build(spec, src)
	if err != nil {
		return nil, err
	}

	hooks := make(map[string]classify.Hook, len(p.Hooks))
	for name, hs := range p.Hooks {
		if _, ok := catalog.Region(hs.Region); !ok {
			return nil, &regions.ConfigError{
				Reason: fmt.Sprintf("variant %q: hook %q references unknown region %q", p.Name, name, hs.Region),
			}
		}
		hs := hs
		hooks[name] = func(f *frame.Frame) bool {
			ok, err := catalog.Matches(f, hs.Region, hs.Target)
			return err == nil && ok
		}
	}

	classifier, err := classify.New(catalog, p.Classifier, hooks)
	if err != nil {
		return nil, err
	}
	judge, err := movement.FromCatalog(catalog, p.Grid, nil, p.Epsilon)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Profile:    p,
		Catalog:    catalog,
		Classifier: classifier,
		Judge:      judge,
	}, nil
}

// #endregion

// #region registry

var profiles = map[string]Profile{}

// Register adds a profile to the registry. Called from variant init
// functions; a duplicate name is a programming error.
func Register(p Profile) {
	if _, dup := profiles[p.Name]; dup {
		panic(fmt.Sprintf("variant: duplicate profile %q", p.Name))
	}
	profiles[p.Name] = p
}

// Get looks up a registered profile by name.
func Get(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("variant: unknown profile %q (have %v)", name, Names())
	}
	return p, nil
}

// Names returns the registered profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion
