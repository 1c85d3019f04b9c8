// Package report persists the operation outcome stream of a run.
//
// Sinks receive outcomes in deterministic traversal order. The CSV sink is
// the machine-readable audit trail, the text sink the human-readable one;
// both are append-only so repeated runs accumulate history.
package report

import "github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"

// Sink receives operation outcomes for persistence.
type Sink interface {
	// Record persists one outcome.
	Record(outcome executor.Outcome) error

	// Close flushes and releases the sink.
	Close() error
}

// MultiSink fans outcomes out to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a MultiSink over the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Record records the outcome on every sink, stopping at the first error.
func (m *MultiSink) Record(outcome executor.Outcome) error {
	for _, s := range m.sinks {
		if err := s.Record(outcome); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink, returning the first error encountered.
func (m *MultiSink) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
