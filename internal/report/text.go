package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/clock"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"
)

// TextSink appends outcomes to a human-readable log, one line per outcome.
type TextSink struct {
	file  *os.File
	clock clock.Clock
}

// NewTextSink opens (or creates) the text log at path in append mode.
func NewTextSink(path string, clk clock.Clock) (*TextSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open text log: %w", err)
	}

	return &TextSink{file: file, clock: clk}, nil
}

// Record appends one outcome line.
func (s *TextSink) Record(outcome executor.Outcome) error {
	line := fmt.Sprintf("%s\t%s\t->\t%s\t%s\t%s\n",
		s.clock.Now().UTC().Format(time.RFC3339),
		outcome.Op.Source,
		outcome.Op.Dest(),
		outcome.Status,
		outcome.Detail,
	)
	if _, err := s.file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write text record: %w", err)
	}
	return nil
}

// Close closes the file.
func (s *TextSink) Close() error {
	return s.file.Close()
}
