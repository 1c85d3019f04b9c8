package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/clock"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/executor"
)

var csvHeader = []string{"timestamp", "source", "destination", "category", "status", "detail"}

// CSVSink appends outcomes to a CSV audit log. The header row is written
// once, when the file is empty.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
	clock  clock.Clock
}

// NewCSVSink opens (or creates) the CSV log at path in append mode.
func NewCSVSink(path string, clk clock.Clock) (*CSVSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv log: %w", err)
	}

	sink := &CSVSink{
		file:   file,
		writer: csv.NewWriter(file),
		clock:  clk,
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat csv log: %w", err)
	}
	if info.Size() == 0 {
		if err := sink.writer.Write(csvHeader); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to write csv header: %w", err)
		}
	}

	return sink, nil
}

// Record appends one outcome row.
func (s *CSVSink) Record(outcome executor.Outcome) error {
	row := []string{
		s.clock.Now().UTC().Format(time.RFC3339),
		outcome.Op.Source,
		outcome.Op.Dest(),
		outcome.Op.Category,
		string(outcome.Status),
		outcome.Detail,
	}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write csv record: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		_ = s.file.Close()
		return fmt.Errorf("failed to flush csv log: %w", err)
	}
	return s.file.Close()
}
