package episode

import "time"

// #region records

// Record is one recorded play episode.
type Record struct {
	EpisodeID string
	Variant   string
	StartedAt time.Time
	EndedAt   *time.Time
}

// Invocation is one executed command within an episode.
type Invocation struct {
	InvocationID string
	EpisodeID    string
	Command      string
	Action       string
	ParamsJSON   string
	Outcome      int
	Snapshots    int
	StepsTaken   *int
	Rotated      *bool
	CreatedAt    time.Time
}

// Decision is the per-invocation decision trail: what the classifier said
// before and after, and why execution stopped.
type Decision struct {
	InvocationID string
	ModeBefore   int
	ModeAfter    int
	StopReason   string
	CreatedAt    time.Time
}

// #endregion records
