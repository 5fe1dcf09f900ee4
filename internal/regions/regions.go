// Package regions implements the named screen region catalog used for
// template-matched game state detection. A region is either single-target
// (one implicit reference sample) or multi-target (several named reference
// samples sharing the same rectangle).
package regions

import (
	"fmt"

	"github.com/jwhitfield/pixelpilot/internal/frame"
)

// #region errors

// UnknownRegionError reports a lookup of a region name not in the catalog.
type UnknownRegionError struct {
	Name string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("regions: unknown region %q", e.Name)
}

// UnknownTargetError reports a lookup of a target name not registered for a
// region.
type UnknownTargetError struct {
	Region string
	Target string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("regions: region %q has no target %q", e.Region, e.Target)
}

// ConfigError reports an invalid catalog definition or a missing reference
// asset. Fatal at startup, never recovered.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "regions: " + e.Reason
}

// #endregion

// #region defs

// Def declares one named region. Threshold 0 means "use the catalog default".
type Def struct {
	Name      string
	Rect      frame.Rect
	Threshold float64
}

// Spec declares a full catalog layer: frame geometry, single-target regions,
// multi-target regions, and the target names per multi-target region.
type Spec struct {
	FrameW       int
	FrameH       int
	Threshold    float64 // default match threshold
	Regions      []Def
	MultiRegions []Def
	Targets      map[string][]string
}

// MergeDefs merges a base definition list with overrides. An override entry
// fully replaces a base entry of the same name; all other base entries are
// preserved. Last-writer-wins by name, not by position.
func MergeDefs(base, override []Def) []Def {
	if len(override) == 0 {
		return base
	}
	merged := make([]Def, len(override), len(override)+len(base))
	copy(merged, override)
	seen := make(map[string]bool, len(override))
	for _, d := range override {
		seen[d.Name] = true
	}
	for _, d := range base {
		if seen[d.Name] {
			continue
		}
		merged = append(merged, d)
	}
	return merged
}

// MergeTargets merges multi-target lists. Override targets extend the base
// list for the same region; new regions are added as-is.
func MergeTargets(base, override map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(base)+len(override))
	for name, targets := range base {
		merged[name] = append([]string(nil), targets...)
	}
	for name, targets := range override {
		merged[name] = append(merged[name], targets...)
	}
	return merged
}

// #endregion

// #region region

// implicitTarget keys the reference sample of a single-target region.
const implicitTarget = ""

// Region is one catalog entry with its loaded reference samples.
type Region struct {
	Name      string
	Rect      frame.Rect
	Multi     bool
	Threshold float64

	samples     map[string]*frame.Frame
	targetOrder []string
}

// Targets returns the registered target names, in declaration order.
// Single-target regions return nil.
func (r *Region) Targets() []string {
	return r.targetOrder
}

// #endregion

// #region catalog

// Catalog is the immutable region catalog for one game variant. Built once
// at startup and read concurrently-safe thereafter (no writers after Build).
type Catalog struct {
	frameW  int
	frameH  int
	order   []string
	regions map[string]*Region
}

// FrameSize returns the frame dimensions the catalog was built for.
func (c *Catalog) FrameSize() (w, h int) {
	return c.frameW, c.frameH
}

// Names returns every region name in declaration order.
func (c *Catalog) Names() []string {
	return c.order
}

// Region looks up a region by name.
func (c *Catalog) Region(name string) (*Region, bool) {
	r, ok := c.regions[name]
	return r, ok
}

// Capture extracts the named rectangle from the frame.
func (c *Catalog) Capture(f *frame.Frame, name string) (*frame.Frame, error) {
	r, ok := c.regions[name]
	if !ok {
		return nil, &UnknownRegionError{Name: name}
	}
	return f.Capture(r.Rect), nil
}

// Score returns the mean absolute pixel difference between the captured
// rectangle and the stored reference sample for the target. Lower is a
// closer match. Pass target "" for a single-target region's implicit target.
func (c *Catalog) Score(f *frame.Frame, name, target string) (float64, error) {
	r, ok := c.regions[name]
	if !ok {
		return 0, &UnknownRegionError{Name: name}
	}
	sample, ok := r.samples[target]
	if !ok {
		return 0, &UnknownTargetError{Region: name, Target: target}
	}
	return frame.MeanAbsDiff(f.Capture(r.Rect), sample), nil
}

// Matches reports whether the captured rectangle is within the region's
// match threshold of the named target. For a single-target region the
// target may be "". For a multi-target region, target "" matches against
// every registered target and reports whether any is within threshold.
func (c *Catalog) Matches(f *frame.Frame, name, target string) (bool, error) {
	r, ok := c.regions[name]
	if !ok {
		return false, &UnknownRegionError{Name: name}
	}
	if r.Multi && target == implicitTarget {
		if len(r.targetOrder) == 0 {
			return false, &UnknownTargetError{Region: name, Target: target}
		}
		captured := f.Capture(r.Rect)
		for _, t := range r.targetOrder {
			if frame.MeanAbsDiff(captured, r.samples[t]) <= r.Threshold {
				return true, nil
			}
		}
		return false, nil
	}
	sample, ok := r.samples[target]
	if !ok {
		return false, &UnknownTargetError{Region: name, Target: target}
	}
	return frame.MeanAbsDiff(f.Capture(r.Rect), sample) <= r.Threshold, nil
}

// #endregion

// #region build

// Build validates a spec, loads every reference sample, and returns the
// immutable catalog. Any missing asset or out-of-bounds geometry is a
// ConfigError.
func Build(spec Spec, src SampleSource) (*Catalog, error) {
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid frame dimensions %dx%d", spec.FrameW, spec.FrameH)}
	}
	c := &Catalog{
		frameW:  spec.FrameW,
		frameH:  spec.FrameH,
		regions: make(map[string]*Region),
	}

	add := func(d Def, multi bool) (*Region, error) {
		if _, dup := c.regions[d.Name]; dup {
			return nil, &ConfigError{Reason: fmt.Sprintf("duplicate region %q", d.Name)}
		}
		if !d.Rect.In(spec.FrameW, spec.FrameH) {
			return nil, &ConfigError{Reason: fmt.Sprintf("region %q bounds %+v exceed frame %dx%d", d.Name, d.Rect, spec.FrameW, spec.FrameH)}
		}
		threshold := d.Threshold
		if threshold == 0 {
			threshold = spec.Threshold
		}
		r := &Region{
			Name:      d.Name,
			Rect:      d.Rect,
			Multi:     multi,
			Threshold: threshold,
			samples:   make(map[string]*frame.Frame),
		}
		c.regions[d.Name] = r
		c.order = append(c.order, d.Name)
		return r, nil
	}

	for _, d := range spec.Regions {
		r, err := add(d, false)
		if err != nil {
			return nil, err
		}
		sample, err := loadSample(src, d, implicitTarget)
		if err != nil {
			return nil, err
		}
		r.samples[implicitTarget] = sample
	}

	for name := range spec.Targets {
		found := false
		for _, d := range spec.MultiRegions {
			if d.Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, &ConfigError{Reason: fmt.Sprintf("targets declared for undefined multi-target region %q", name)}
		}
	}

	for _, d := range spec.MultiRegions {
		r, err := add(d, true)
		if err != nil {
			return nil, err
		}
		for _, target := range spec.Targets[d.Name] {
			if _, dup := r.samples[target]; dup {
				return nil, &ConfigError{Reason: fmt.Sprintf("duplicate target %q for region %q", target, d.Name)}
			}
			sample, err := loadSample(src, d, target)
			if err != nil {
				return nil, err
			}
			r.samples[target] = sample
			r.targetOrder = append(r.targetOrder, target)
		}
	}

	return c, nil
}

func loadSample(src SampleSource, d Def, target string) (*frame.Frame, error) {
	sample, err := src.Sample(d.Name, target)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("reference sample for region %q target %q: %v", d.Name, target, err)}
	}
	if sample.W != d.Rect.W || sample.H != d.Rect.H {
		return nil, &ConfigError{Reason: fmt.Sprintf("reference sample for region %q target %q is %dx%d, region is %dx%d",
			d.Name, target, sample.W, sample.H, d.Rect.W, d.Rect.H)}
	}
	return sample, nil
}

// #endregion
