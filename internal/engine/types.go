package engine

import (
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/planner"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/report"
)

// RunRequest represents a request to organize a directory.
type RunRequest struct {
	// Root is the directory to scan and organize.
	Root string

	// Recursive scans subdirectories as well as the top level.
	Recursive bool

	// DryRun performs planning only without moving files. The flag is
	// consumed by the executor; planning output is identical either way.
	DryRun bool

	// OverridePath is an optional extension map file (ext,folder rows).
	OverridePath string

	// Overrides are extra extension overrides, typically from the config
	// file. Entries from OverridePath take precedence over these.
	Overrides []extmap.Override

	// CSVLogPath is the machine-readable audit log ("" disables it).
	CSVLogPath string

	// TextLogPath is the human-readable audit log ("" disables it).
	TextLogPath string
}

// RunResult represents the result of an organize run.
type RunResult struct {
	// Plan is the ordered list of planned operations.
	Plan *planner.Plan `json:"-"`

	// Outcomes is the per-operation outcome stream, in plan order.
	Outcomes []executor.Outcome `json:"outcomes"`

	// Summary holds the per-run counters.
	Summary report.Summary `json:"summary"`
}
