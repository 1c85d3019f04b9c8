package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
)

var (
	categoriesMap    string
	categoriesConfig string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the effective extension to category mapping",
	Long: `Print the extension table a run would use: the built-in defaults merged
with the config file's categories section and an optional override map file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFile(categoriesConfig)
		if err != nil {
			return err
		}

		overrides := cfg.Overrides()
		if categoriesMap != "" {
			fileOverrides, err := extmap.LoadOverrides(categoriesMap)
			if err != nil {
				return err
			}
			overrides = append(overrides, fileOverrides...)
		}

		m := extmap.New(overrides...)
		entries := m.Entries()

		if jsonOutput {
			return outputJSON(map[string]interface{}{
				"categories": m.Categories(),
				"extensions": entries,
			})
		}

		exts := make([]string, 0, len(entries))
		for ext := range entries {
			exts = append(exts, ext)
		}
		sort.Strings(exts)

		rows := make([][]string, 0, len(exts))
		for _, ext := range exts {
			rows = append(rows, []string{ext, entries[ext]})
		}

		PrintSection("Extension Mapping")
		PrintTable([]string{"Extension", "Category"}, rows)
		PrintLabelValue("Fallback", extmap.CategoryOthers)
		return nil
	},
}

func init() {
	categoriesCmd.Flags().StringVarP(&categoriesMap, "map", "m", "", "Override map file with ext,folder rows")
	categoriesCmd.Flags().StringVar(&categoriesConfig, "config", "", "Config file (default: state directory config.yaml)")
}
