package cli

import (
	"encoding/json"
	"os"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/clock"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/config"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/engine"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
)

// newEngine creates a new engine with real implementations of all
// dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), &clock.RealClock{})
}

// loadConfigFile loads the config file. An explicit --config path must
// exist; the default location is optional.
func loadConfigFile(explicit string) (*config.File, error) {
	if explicit != "" {
		cfg, err := config.LoadFile(explicit, true)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.LoadFile(config.DefaultPaths().Config, false)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatError formats an error for display. main prints this for any error
// that escapes command execution.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}
