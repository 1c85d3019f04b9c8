package planner

import "path/filepath"

// PlannedOperation is a single collision-resolved move. Immutable once
// emitted by the planner.
type PlannedOperation struct {
	// Source is the absolute path of the file to move.
	Source string

	// DestDir is the destination directory (absolute).
	DestDir string

	// DestName is the collision-resolved destination filename.
	DestName string

	// Category is the category folder the file was classified into.
	Category string

	// Seq is the zero-based position of the operation within the run.
	Seq int
}

// Dest returns the full destination path of the operation.
func (op PlannedOperation) Dest() string {
	return filepath.Join(op.DestDir, op.DestName)
}

// Plan is an ordered list of planned operations for one run.
type Plan struct {
	// Operations is the ordered list of moves to execute.
	Operations []PlannedOperation
}

// NewPlan creates an empty Plan.
func NewPlan() *Plan {
	return &Plan{Operations: []PlannedOperation{}}
}

// AddOperation appends an operation to the plan.
func (p *Plan) AddOperation(op PlannedOperation) {
	p.Operations = append(p.Operations, op)
}

// Dests returns the full destination paths of all operations, in order.
func (p *Plan) Dests() []string {
	dests := make([]string, 0, len(p.Operations))
	for _, op := range p.Operations {
		dests = append(dests, op.Dest())
	}
	return dests
}
