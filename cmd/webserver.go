package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"elementarium/pkg/envs"
	"elementarium/pkg/infras/database"
	"elementarium/pkg/logging"
	"elementarium/pkg/router"
	"elementarium/pkg/storage"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "webserver start http server.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()
		// 数据产物需要先通过 generate 生成
		storage.InitElementsData()
		database.InitDBClient(context.Background())

		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		router.InitRouter()
	},
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
