package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"elementarium/pkg/common/runtime"
	"elementarium/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version show elementarium version info.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersion())
		fmt.Printf("RunMode: %s\n", runtime.RunMode)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
