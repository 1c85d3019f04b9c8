// Package engine provides the core orchestration for organize runs.
//
// A run is a bounded, strictly sequential batch: discover entries, plan
// moves, execute the plan (or simulate it), and persist the outcome stream
// to the audit sinks. The engine wires the components together; the
// planning guarantees themselves live in the planner package.
package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/clock"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/logging"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/planner"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/report"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/scan"
)

// Engine orchestrates organize runs. It is the main API surface called by
// the CLI.
type Engine struct {
	fs     fsops.FS
	clock  clock.Clock
	logger zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, clk clock.Clock) *Engine {
	return &Engine{
		fs:     fs,
		clock:  clk,
		logger: logging.GetLogger("engine"),
	}
}

// Run executes one organize run.
//
// Algorithm steps:
//  1. Validate the root path (fatal before any planning)
//  2. Build the extension map (defaults + config overrides + map file)
//  3. Scan for candidate entries in traversal order
//  4. Plan moves (dry-run independent)
//  5. Execute the plan, one outcome per operation
//  6. Record outcomes to the audit sinks, in order
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := e.validateRoot(req.Root)
	if err != nil {
		return nil, err
	}

	extensions, err := e.buildExtensionMap(req)
	if err != nil {
		return nil, err
	}

	scanner := scan.New(extensions.Categories(), req.CSVLogPath, req.TextLogPath)
	entries, err := scanner.Scan(root, req.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	e.logger.Debug().Int("entries", len(entries)).Str("root", root).Msg("scan complete")

	plan, err := planner.NewMovePlanner(e.fs, root, extensions).Plan(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to plan run: %w", err)
	}

	sink, err := e.openSinks(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			e.logger.Warn().Err(cerr).Msg("failed to close audit sinks")
		}
	}()

	exec := executor.New(e.fs, req.DryRun)
	outcomes := make([]executor.Outcome, 0, len(plan.Operations))
	for _, op := range plan.Operations {
		outcome := exec.Execute(op)
		outcomes = append(outcomes, outcome)
		if err := sink.Record(outcome); err != nil {
			return nil, fmt.Errorf("failed to record outcome: %w", err)
		}
	}

	return &RunResult{
		Plan:     plan,
		Outcomes: outcomes,
		Summary:  report.Summarize(len(entries), outcomes),
	}, nil
}

// validateRoot resolves the root to an absolute path and checks it is an
// existing directory.
func (e *Engine) validateRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path: %w", err)
	}

	info, err := e.fs.Lstat(abs)
	if err != nil {
		if fsops.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, abs)
		}
		return "", fmt.Errorf("failed to stat root path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	return abs, nil
}

// buildExtensionMap merges defaults, config overrides, and the optional
// override map file, in that precedence order (later wins).
func (e *Engine) buildExtensionMap(req *RunRequest) (*extmap.Map, error) {
	overrides := append([]extmap.Override{}, req.Overrides...)

	if req.OverridePath != "" {
		fileOverrides, err := extmap.LoadOverrides(req.OverridePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load override map: %w", err)
		}
		overrides = append(overrides, fileOverrides...)
	}

	return extmap.New(overrides...), nil
}

// openSinks builds the audit sink chain for the run. Disabled sinks are
// simply omitted; with no log paths configured outcomes are still returned
// to the caller, just not persisted.
func (e *Engine) openSinks(req *RunRequest) (report.Sink, error) {
	var sinks []report.Sink

	if req.CSVLogPath != "" {
		csvSink, err := report.NewCSVSink(req.CSVLogPath, e.clock)
		if err != nil {
			return nil, fmt.Errorf("failed to open csv log: %w", err)
		}
		sinks = append(sinks, csvSink)
	}

	if req.TextLogPath != "" {
		textSink, err := report.NewTextSink(req.TextLogPath, e.clock)
		if err != nil {
			return nil, fmt.Errorf("failed to open text log: %w", err)
		}
		sinks = append(sinks, textSink)
	}

	return report.NewMultiSink(sinks...), nil
}
