// Package planner handles the planning phase of an organize run.
//
// The planner turns discovered file entries into a deterministic, ordered
// list of planned move operations. Classification is by extension only,
// collision resolution consults both the real filesystem and the names
// already claimed during the current run, and the resulting plan is
// identical whether or not the run is a dry run.
//
// Key responsibilities:
//   - Classify entries into category folders via the extension map
//   - Resolve collision-free destination filenames
//   - Skip entries already in their correct category folder
//   - Guarantee no two operations in a run share a destination path
package planner
