package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"elementarium/pkg/catalog"
	"elementarium/pkg/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check validate the element catalog static data.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()

		if err := catalog.Validate(); err != nil {
			logging.GetSystemLogger().Fatalf("catalog validation failed: %s", err)
		}
		color.Green(
			"catalog ok: %d elements, %d x %d grid",
			len(catalog.Entries()), catalog.GridCols, catalog.GridRows,
		)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
