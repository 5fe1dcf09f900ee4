package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jwhitfield/pixelpilot/internal/action"
	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/episode"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to pixelpilot.db")
	last := flag.Int("last", 20, "show N most recent episodes")
	episodeID := flag.String("episode", "", "show one episode's invocations")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/pixelpilot.db [--last N] [--episode id] [--json]")
		os.Exit(2)
	}

	store, err := episode.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *episodeID != "" {
		err = runEpisodeMode(store, *episodeID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type episodeRow struct {
	EpisodeID   string `json:"episode_id"`
	Variant     string `json:"variant"`
	StartedAt   string `json:"started_at"`
	EndedAt     string `json:"ended_at,omitempty"`
	Invocations int    `json:"invocations"`
}

func runListMode(store *episode.Store, last int, jsonOut bool) error {
	records, err := store.ListEpisodes(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no episodes found")
		return nil
	}

	rows := make([]episodeRow, 0, len(records))
	for _, rec := range records {
		invs, err := store.ListInvocations(rec.EpisodeID)
		if err != nil {
			return err
		}
		row := episodeRow{
			EpisodeID:   rec.EpisodeID,
			Variant:     rec.Variant,
			StartedAt:   rec.StartedAt.Format("2006-01-02T15:04:05Z"),
			Invocations: len(invs),
		}
		if rec.EndedAt != nil {
			row.EndedAt = rec.EndedAt.Format("2006-01-02T15:04:05Z")
		}
		rows = append(rows, row)
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-10s  %-20s  %-20s  %s\n",
		"Episode", "Variant", "Started", "Ended", "Commands")
	for _, row := range rows {
		ended := "-"
		if row.EndedAt != "" {
			ended = row.EndedAt
		}
		fmt.Printf("%-10s  %-10s  %-20s  %-20s  %d\n",
			shortID(row.EpisodeID), row.Variant, row.StartedAt, ended, row.Invocations)
	}
	return nil
}

// #endregion list-mode

// #region episode-mode

type invocationRow struct {
	InvocationID string `json:"invocation_id"`
	Command      string `json:"command"`
	Outcome      string `json:"outcome"`
	Snapshots    int    `json:"snapshots"`
	StepsTaken   *int   `json:"steps_taken,omitempty"`
	Rotated      *bool  `json:"rotated,omitempty"`
	ModeBefore   string `json:"mode_before,omitempty"`
	ModeAfter    string `json:"mode_after,omitempty"`
	StopReason   string `json:"stop_reason,omitempty"`
}

func runEpisodeMode(store *episode.Store, episodeID string, jsonOut bool) error {
	invs, err := store.ListInvocations(episodeID)
	if err != nil {
		return err
	}
	if len(invs) == 0 {
		fmt.Fprintln(os.Stderr, "no invocations found")
		return nil
	}

	rows := make([]invocationRow, 0, len(invs))
	for _, inv := range invs {
		row := invocationRow{
			InvocationID: inv.InvocationID,
			Command:      inv.Command,
			Outcome:      action.Outcome(inv.Outcome).String(),
			Snapshots:    inv.Snapshots,
			StepsTaken:   inv.StepsTaken,
			Rotated:      inv.Rotated,
		}
		decs, err := store.Decisions(inv.InvocationID)
		if err != nil {
			return err
		}
		if len(decs) > 0 {
			d := decs[len(decs)-1]
			row.ModeBefore = classify.Mode(d.ModeBefore).String()
			row.ModeAfter = classify.Mode(d.ModeAfter).String()
			row.StopReason = d.StopReason
		}
		rows = append(rows, row)
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-28s  %-12s  %-6s  %-12s  %-12s  %s\n",
		"Invoke", "Command", "Outcome", "Snaps", "Before", "After", "Steps")
	for _, row := range rows {
		steps := "-"
		if row.StepsTaken != nil {
			steps = fmt.Sprintf("%d", *row.StepsTaken)
			if row.Rotated != nil && *row.Rotated {
				steps += " (rotated)"
			}
		}
		fmt.Printf("%-10s  %-28s  %-12s  %-6d  %-12s  %-12s  %s\n",
			shortID(row.InvocationID), row.Command, row.Outcome, row.Snapshots,
			row.ModeBefore, row.ModeAfter, steps)
	}
	return nil
}

// #endregion episode-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
