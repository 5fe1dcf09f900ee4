package episode

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "episodes.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBeginAndEndEpisode(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.BeginEpisode("deja_vu")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if rec.EpisodeID == "" {
		t.Fatal("episode id not assigned")
	}
	if rec.Variant != "deja_vu" {
		t.Errorf("variant = %q", rec.Variant)
	}

	episodes, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(episodes) != 1 {
		t.Fatalf("episode count = %d, want 1", len(episodes))
	}
	if episodes[0].EndedAt != nil {
		t.Error("fresh episode should not be ended")
	}

	if err := s.EndEpisode(rec.EpisodeID); err != nil {
		t.Fatalf("end: %v", err)
	}
	episodes, _ = s.ListEpisodes(10)
	if episodes[0].EndedAt == nil {
		t.Error("ended episode should carry an end time")
	}

	if err := s.EndEpisode("nope"); err == nil {
		t.Error("ending an unknown episode should fail")
	}
}

func TestRecordInvocation(t *testing.T) {
	s := newTestStore(t)
	ep, err := s.BeginEpisode("deja_vu")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	steps := 3
	rotated := true
	id, err := s.RecordInvocation(Invocation{
		EpisodeID:  ep.EpisodeID,
		Command:    "move_steps(right,5)",
		Action:     "move_steps",
		ParamsJSON: `{"direction":"right","steps":5}`,
		Outcome:    1,
		Snapshots:  4,
		StepsTaken: &steps,
		Rotated:    &rotated,
	}, Decision{
		ModeBefore: 0,
		ModeAfter:  0,
		StopReason: "blocked",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatal("invocation id not assigned")
	}

	invs, err := s.ListInvocations(ep.EpisodeID)
	if err != nil {
		t.Fatalf("list invocations: %v", err)
	}
	if len(invs) != 1 {
		t.Fatalf("invocation count = %d, want 1", len(invs))
	}
	inv := invs[0]
	if inv.Command != "move_steps(right,5)" || inv.Action != "move_steps" {
		t.Errorf("command/action round trip wrong: %q %q", inv.Command, inv.Action)
	}
	if inv.Outcome != 1 || inv.Snapshots != 4 {
		t.Errorf("outcome/snapshots = %d/%d", inv.Outcome, inv.Snapshots)
	}
	if inv.StepsTaken == nil || *inv.StepsTaken != 3 {
		t.Errorf("steps taken = %v, want 3", inv.StepsTaken)
	}
	if inv.Rotated == nil || !*inv.Rotated {
		t.Errorf("rotated = %v, want true", inv.Rotated)
	}

	decs, err := s.Decisions(id)
	if err != nil {
		t.Fatalf("decisions: %v", err)
	}
	if len(decs) != 1 {
		t.Fatalf("decision count = %d, want 1", len(decs))
	}
	if decs[0].StopReason != "blocked" {
		t.Errorf("stop reason = %q", decs[0].StopReason)
	}
}

func TestNullableColumns(t *testing.T) {
	s := newTestStore(t)
	ep, _ := s.BeginEpisode("deja_vu")

	_, err := s.RecordInvocation(Invocation{
		EpisodeID: ep.EpisodeID,
		Command:   "interact()",
		Action:    "interact",
		Outcome:   -1,
		Snapshots: 1,
	}, Decision{ModeBefore: 0, ModeAfter: 0, StopReason: "nothing there"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	invs, _ := s.ListInvocations(ep.EpisodeID)
	inv := invs[0]
	if inv.StepsTaken != nil || inv.Rotated != nil {
		t.Errorf("nullable fields should round trip as nil: %v %v", inv.StepsTaken, inv.Rotated)
	}
	if inv.ParamsJSON != "" {
		t.Errorf("params json should be empty, got %q", inv.ParamsJSON)
	}
}

func TestListOrder(t *testing.T) {
	s := newTestStore(t)
	ep, _ := s.BeginEpisode("deja_vu")
	for _, cmd := range []string{"tick_until_stable()", "interact()", "advance_dialogue()"} {
		if _, err := s.RecordInvocation(Invocation{
			EpisodeID: ep.EpisodeID,
			Command:   cmd,
			Action:    cmd[:len(cmd)-2],
			Outcome:   0,
			Snapshots: 1,
		}, Decision{}); err != nil {
			t.Fatalf("record %s: %v", cmd, err)
		}
	}
	invs, err := s.ListInvocations(ep.EpisodeID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invs) != 3 {
		t.Fatalf("invocation count = %d, want 3", len(invs))
	}
}
