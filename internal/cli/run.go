package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/config"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/engine"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"
)

var (
	runPath       string
	runRecursive  bool
	runDryRun     bool
	runLog        string
	runLogHuman   string
	runMap        string
	runConfigPath string
	runNoLog      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Organize a directory into category subfolders",
	Long: `Scan a directory and move each file into a category subfolder based on
its extension. Files already in their category folder are left alone, so
re-running over an organized tree is a no-op.

With --dry-run the full plan is computed and reported without moving
anything; the planned destinations are exactly those a real run would use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFile(runConfigPath)
		if err != nil {
			return err
		}

		req, err := buildRunRequest(cmd, cfg)
		if err != nil {
			return err
		}

		result, err := newEngine().Run(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printRunResult(req, result)
		return nil
	},
}

// buildRunRequest merges flags over config file values. A flag the user set
// always wins; config file values fill in the rest.
func buildRunRequest(cmd *cobra.Command, cfg *config.File) (*engine.RunRequest, error) {
	req := &engine.RunRequest{
		Root:         runPath,
		Recursive:    runRecursive,
		DryRun:       runDryRun,
		OverridePath: runMap,
		Overrides:    cfg.Overrides(),
	}

	if !cmd.Flags().Changed("recursive") && cfg.Recursive != nil {
		req.Recursive = *cfg.Recursive
	}
	if !cmd.Flags().Changed("dry-run") && cfg.DryRun != nil {
		req.DryRun = *cfg.DryRun
	}

	if !runNoLog {
		paths := config.DefaultPaths()
		req.CSVLogPath = runLog
		if req.CSVLogPath == "" {
			req.CSVLogPath = cfg.Log
		}
		if req.CSVLogPath == "" {
			req.CSVLogPath = paths.CSVLog
		}

		req.TextLogPath = runLogHuman
		if req.TextLogPath == "" {
			req.TextLogPath = cfg.LogHuman
		}
	}

	return req, nil
}

// printRunResult renders the human-readable run report.
func printRunResult(req *engine.RunRequest, result *engine.RunResult) {
	if req.DryRun {
		PrintSection("Dry Run")
		PrintInfo(fmt.Sprintf("Would move %s", PrintCount(len(result.Plan.Operations), "file", "files")))
		if len(result.Plan.Operations) > 0 {
			items := make([]string, 0, len(result.Plan.Operations))
			for _, op := range result.Plan.Operations {
				items = append(items, fmt.Sprintf("%s -> %s", op.Source, op.Dest()))
			}
			PrintList(items, 1)
		}
	} else {
		for _, outcome := range result.Outcomes {
			switch outcome.Status {
			case executor.StatusFailed:
				PrintError(fmt.Sprintf("%s: %s", outcome.Op.Source, outcome.Detail))
			case executor.StatusSkipped:
				PrintWarning(fmt.Sprintf("%s: %s", outcome.Op.Source, outcome.Detail))
			}
		}
	}

	PrintSection("Summary")
	PrintLabelValue("Examined", fmt.Sprintf("%d", result.Summary.Examined))
	PrintLabelValue("Planned", fmt.Sprintf("%d", result.Summary.Planned))
	if req.DryRun {
		PrintLabelValue("Simulated", fmt.Sprintf("%d", result.Summary.Simulated))
	} else {
		PrintLabelValue("Moved", fmt.Sprintf("%d", result.Summary.Applied))
		PrintLabelValue("Skipped", fmt.Sprintf("%d", result.Summary.Skipped))
		PrintLabelValue("Failed", fmt.Sprintf("%d", result.Summary.Failed))
	}

	if req.DryRun {
		PrintInfo("")
		PrintWarning("Dry run - no files were moved. Run again without --dry-run to apply.")
	} else if result.Summary.Failed == 0 {
		PrintSuccess(fmt.Sprintf("Organized %s", PrintCount(result.Summary.Applied, "file", "files")))
	}
}

func init() {
	runCmd.Flags().StringVarP(&runPath, "path", "p", "", "Directory to scan and organize (required)")
	runCmd.Flags().BoolVarP(&runRecursive, "recursive", "r", false, "Scan subdirectories recursively")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Report the plan without moving files")
	runCmd.Flags().StringVar(&runLog, "log", "", "CSV audit log path (default: state directory)")
	runCmd.Flags().StringVar(&runLogHuman, "log-human", "", "Human-readable log path (optional)")
	runCmd.Flags().StringVarP(&runMap, "map", "m", "", "Override map file with ext,folder rows")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Config file (default: state directory config.yaml)")
	runCmd.Flags().BoolVar(&runNoLog, "no-log", false, "Disable audit logs for this run")
	_ = runCmd.MarkFlagRequired("path")
}
