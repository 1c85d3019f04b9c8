package extmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/logging"
)

// LoadOverrides reads override entries from a file.
//
// Each row is "ext,folder". Blank lines and lines starting with # are
// skipped. Malformed rows are skipped individually with a warning; they
// never fail the load.
func LoadOverrides(path string) ([]Override, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open override map: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseOverrides(f), nil
}

// ParseOverrides parses override rows from r, skipping malformed rows with
// an itemized warning per row.
func ParseOverrides(r io.Reader) []Override {
	logger := logging.GetLogger("extmap")

	var overrides []Override
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ext, category, ok := strings.Cut(line, ",")
		if !ok {
			logger.Warn().Int("line", lineNo).Str("row", line).Msg("override row has no comma, skipping")
			continue
		}

		ext = NormalizeExt(ext)
		category = strings.TrimSpace(category)
		if ext == "" {
			logger.Warn().Int("line", lineNo).Str("row", line).Msg("override row has empty extension, skipping")
			continue
		}
		if category == "" {
			logger.Warn().Int("line", lineNo).Str("row", line).Msg("override row has empty category, skipping")
			continue
		}

		overrides = append(overrides, Override{Ext: ext, Category: category})
	}

	return overrides
}

// NormalizeExt normalizes an extension to lowercase with a single leading
// dot. Accepted forms: "txt", ".txt", "*.txt". Returns "" for empty input.
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, "*.")
	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		return ""
	}
	return "." + strings.ToLower(ext)
}
