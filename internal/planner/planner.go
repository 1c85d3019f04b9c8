package planner

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/logging"
)

// MovePlanner turns an ordered sequence of file entries into a Plan.
//
// Planning never consults the dry-run flag; that flag is consumed by the
// executor only, so a simulated run plans exactly what a real run would.
type MovePlanner struct {
	root       string
	classifier *Classifier
	resolver   *Resolver
	logger     zerolog.Logger
}

// NewMovePlanner creates a MovePlanner for one run over the given root.
// A fresh Resolver (and with it a fresh claimed set) is created per planner.
func NewMovePlanner(fs fsops.FS, root string, extensions *extmap.Map) *MovePlanner {
	return &MovePlanner{
		root:       filepath.Clean(root),
		classifier: NewClassifier(extensions),
		resolver:   NewResolver(fs),
		logger:     logging.GetLogger("planner"),
	}
}

// Plan processes entries in the order supplied and returns the resulting
// plan. Entries already sitting in their correct category folder are skipped
// silently; a file in the right folder never needs a rename, since its own
// name cannot collide with itself.
func (p *MovePlanner) Plan(entries []FileEntry) (*Plan, error) {
	plan := NewPlan()

	for _, entry := range entries {
		category := p.classifier.Classify(entry)
		destDir := filepath.Join(p.root, category)

		if filepath.Clean(entry.Dir) == destDir {
			p.logger.Debug().
				Str("path", entry.Path).
				Str("category", category).
				Msg("already in category folder, skipping")
			continue
		}

		destName, err := p.resolver.Resolve(destDir, entry.Name, entry.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve destination for %s: %w", entry.Path, err)
		}

		op := PlannedOperation{
			Source:   entry.Path,
			DestDir:  destDir,
			DestName: destName,
			Category: category,
			Seq:      len(plan.Operations),
		}
		plan.AddOperation(op)

		p.logger.Debug().
			Str("source", op.Source).
			Str("dest", op.Dest()).
			Str("category", op.Category).
			Msg("planned move")
	}

	return plan, nil
}
