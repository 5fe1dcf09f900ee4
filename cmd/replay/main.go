package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jwhitfield/pixelpilot/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}
	os.Exit(runFixture(*fixturePath))
}

// #endregion main

// #region output

func runFixture(path string) int {
	fx, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	if fx.Description != "" {
		fmt.Println(fx.Description)
		fmt.Println()
	}

	results, err := replay.Run(context.Background(), fx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}
	return printComparison(results)
}

// printComparison outputs a comparison table and returns the exit code.
func printComparison(results []replay.CommandResult) int {
	fmt.Printf("%-32s| %-12s| %-12s| %s\n", "Command", "Expected", "Actual", "Match")
	fmt.Printf("%-32s+%-13s+%-13s+%s\n",
		"--------------------------------", "-------------", "-------------", "------")

	for _, r := range results {
		expected := r.Expected.String()
		actual := r.Actual.String()
		match := "DIFF"
		switch {
		case r.Err != "":
			actual = "error"
			match = "ERR"
		case r.Matched:
			match = "OK"
		}
		fmt.Printf("%-32s| %-12s| %-12s| %s\n", r.Command, expected, actual, match)
		if r.Err != "" {
			fmt.Printf("    %s\n", r.Err)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d errors\n",
		s.Total, s.Matched, s.Diverged, s.Errors)

	if !s.Clean() {
		return 1
	}
	return 0
}

// #endregion output
