package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "elementarium",
	Short: "elementarium is a periodic table data toolchain.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use elementarium, use `elementarium -h` for help")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
