// Package executor applies planned move operations to the filesystem.
//
// The executor is the only component that looks at the dry-run flag. In a
// dry run every operation reports simulated and nothing is touched; in a
// real run each operation either fully succeeds or leaves its source file
// in place. A failing operation never aborts the batch.
package executor

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/logging"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/planner"
)

// Status is the terminal state of an executed operation.
type Status string

const (
	// StatusApplied means the move completed on the real filesystem.
	StatusApplied Status = "applied"

	// StatusSimulated means the run was a dry run and nothing was changed.
	StatusSimulated Status = "simulated"

	// StatusSkipped means the source vanished between planning and execution.
	StatusSkipped Status = "skipped"

	// StatusFailed means the filesystem rejected the move; the source file
	// is untouched.
	StatusFailed Status = "failed"
)

// Outcome reports the terminal state of one planned operation. Each
// operation produces exactly one outcome.
type Outcome struct {
	// Op is the operation this outcome belongs to.
	Op planner.PlannedOperation

	// Status is the terminal state.
	Status Status

	// Detail carries the error or skip reason, empty on success.
	Detail string
}

// Executor executes planned operations.
type Executor struct {
	fs     fsops.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates an Executor. When dryRun is true no filesystem mutation is
// performed.
func New(fs fsops.FS, dryRun bool) *Executor {
	return &Executor{
		fs:     fs,
		dryRun: dryRun,
		logger: logging.GetLogger("executor"),
	}
}

// ExecuteAll executes the plan's operations in order and returns one
// outcome per operation, in the same order.
func (e *Executor) ExecuteAll(plan *planner.Plan) []Outcome {
	outcomes := make([]Outcome, 0, len(plan.Operations))
	for _, op := range plan.Operations {
		outcomes = append(outcomes, e.Execute(op))
	}
	return outcomes
}

// Execute executes a single operation and returns its outcome.
func (e *Executor) Execute(op planner.PlannedOperation) Outcome {
	e.logger.Debug().
		Str("source", op.Source).
		Str("dest", op.Dest()).
		Bool("dry_run", e.dryRun).
		Msg("executing operation")

	if e.dryRun {
		return Outcome{Op: op, Status: StatusSimulated}
	}

	exists, err := e.fs.Exists(op.Source)
	if err != nil {
		return e.failed(op, fmt.Errorf("failed to check source: %w", err))
	}
	if !exists {
		e.logger.Info().Str("source", op.Source).Msg("source vanished before execution")
		return Outcome{
			Op:     op,
			Status: StatusSkipped,
			Detail: "source no longer exists",
		}
	}

	if err := e.fs.MkdirAll(op.DestDir, 0755); err != nil {
		return e.failed(op, fmt.Errorf("failed to create destination directory: %w", err))
	}

	if err := e.fs.Move(op.Source, op.Dest()); err != nil {
		if os.IsNotExist(err) {
			// Lost a race with a concurrent actor after the existence check.
			return Outcome{
				Op:     op,
				Status: StatusSkipped,
				Detail: "source no longer exists",
			}
		}
		return e.failed(op, err)
	}

	e.logger.Info().
		Str("source", op.Source).
		Str("dest", op.Dest()).
		Str("category", op.Category).
		Msg("moved")

	return Outcome{Op: op, Status: StatusApplied}
}

func (e *Executor) failed(op planner.PlannedOperation, err error) Outcome {
	e.logger.Error().
		Err(err).
		Str("source", op.Source).
		Str("dest", op.Dest()).
		Msg("operation failed")

	return Outcome{Op: op, Status: StatusFailed, Detail: err.Error()}
}
