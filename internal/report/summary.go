package report

import "github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"

// Summary holds the per-run counters printed at the end of a run.
type Summary struct {
	// Examined is the number of entries the scanner yielded.
	Examined int `json:"examined"`

	// Planned is the number of operations the planner emitted.
	Planned int `json:"planned"`

	// Applied counts moves performed on the real filesystem.
	Applied int `json:"applied"`

	// Simulated counts dry-run outcomes.
	Simulated int `json:"simulated"`

	// Skipped counts operations whose source vanished before execution.
	Skipped int `json:"skipped"`

	// Failed counts operations rejected by the filesystem.
	Failed int `json:"failed"`
}

// Summarize tallies outcome statuses. examined is the total number of
// scanned entries, including those the planner skipped as already in place.
func Summarize(examined int, outcomes []executor.Outcome) Summary {
	s := Summary{
		Examined: examined,
		Planned:  len(outcomes),
	}
	for _, o := range outcomes {
		switch o.Status {
		case executor.StatusApplied:
			s.Applied++
		case executor.StatusSimulated:
			s.Simulated++
		case executor.StatusSkipped:
			s.Skipped++
		case executor.StatusFailed:
			s.Failed++
		}
	}
	return s
}
