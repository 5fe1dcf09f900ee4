package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jwhitfield/pixelpilot/internal/config"
	"github.com/jwhitfield/pixelpilot/internal/regions"
	"github.com/jwhitfield/pixelpilot/internal/variant"
)

// #region main

// catalog-check is a preflight for a variant's reference captures: it lists
// every missing, misread, or mis-sized sample instead of stopping at the
// first, then verifies the full classifier wiring.
func main() {
	variantName := flag.String("variant", "deja_vu", "game variant profile")
	configPath := flag.String("config", "", "explicit config file (default: configs/<variant>.yaml)")
	flag.Parse()

	profile, err := variant.Get(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg, err := config.Load(*variantName, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	profile = cfg.Apply(profile)

	spec, err := profile.Spec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	src := regions.DirSource{Root: cfg.AssetRoot()}

	problems := checkAssets(spec, src)
	for _, p := range problems {
		fmt.Println("MISSING  " + p)
	}
	if len(problems) > 0 {
		fmt.Printf("\n%s: %d problem(s) under %s\n", profile.Name, len(problems), cfg.AssetRoot())
		os.Exit(1)
	}

	// Samples are all present; make sure the full bundle wires up too.
	if _, err := variant.Build(profile, src); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	samples := len(spec.Regions)
	for _, targets := range spec.Targets {
		samples += len(targets)
	}
	fmt.Printf("%s: catalog ok (%d regions, %d samples) under %s\n",
		profile.Name, len(spec.Regions)+len(spec.MultiRegions), samples, cfg.AssetRoot())
}

// #endregion main

// #region checks

func checkAssets(spec regions.Spec, src regions.SampleSource) []string {
	var problems []string
	verify := func(name, target string, w, h int) {
		label := name
		if target != "" {
			label = name + "/" + target
		}
		sample, err := src.Sample(name, target)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", label, err))
			return
		}
		if sample.W != w || sample.H != h {
			problems = append(problems,
				fmt.Sprintf("%s: sample is %dx%d, region is %dx%d", label, sample.W, sample.H, w, h))
		}
	}

	for _, d := range spec.Regions {
		if !d.Rect.In(spec.FrameW, spec.FrameH) {
			problems = append(problems, fmt.Sprintf("%s: bounds %+v exceed frame %dx%d",
				d.Name, d.Rect, spec.FrameW, spec.FrameH))
			continue
		}
		verify(d.Name, "", d.Rect.W, d.Rect.H)
	}
	for _, d := range spec.MultiRegions {
		if !d.Rect.In(spec.FrameW, spec.FrameH) {
			problems = append(problems, fmt.Sprintf("%s: bounds %+v exceed frame %dx%d",
				d.Name, d.Rect, spec.FrameW, spec.FrameH))
			continue
		}
		for _, target := range spec.Targets[d.Name] {
			verify(d.Name, target, d.Rect.W, d.Rect.H)
		}
	}
	return problems
}

// #endregion checks
