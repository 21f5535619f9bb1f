package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"elementarium/pkg/catalog"
	"elementarium/pkg/enrich"
	"elementarium/pkg/envs"
	"elementarium/pkg/grid"
	"elementarium/pkg/infras/database"
	"elementarium/pkg/logging"
	"elementarium/pkg/model"
)

// NewGenerateCmd ...
func NewGenerateCmd() *cobra.Command {
	var (
		output          string
		batchSize       int
		interBatchDelay time.Duration
		useCache        bool
	)

	generateCmd := cobra.Command{
		Use:   "generate",
		Short: "generate build the elements.json asset (catalog + fetched extracts).",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logging.InitLogger()
			logger := logging.GetSystemLogger()

			// 静态数据校验前置，数据勘误直接终止
			if err := catalog.Validate(); err != nil {
				logger.Fatalf("catalog validation failed: %s", err)
			}

			entries := catalog.Entries()

			// 已缓存的简介无需重复抓取
			extracts := map[string]string{}
			if useCache {
				database.InitDBClient(ctx)

				cached, err := enrich.LoadCachedExtracts(ctx)
				if err != nil {
					logger.Fatalf("failed to load cached extracts: %s", err)
				}
				extracts = cached
			}

			var missing []model.Element
			for _, e := range entries {
				if _, ok := extracts[catalog.TitleOf(e.Name)]; !ok {
					missing = append(missing, e)
				}
			}

			if len(missing) > 0 {
				fetcher, err := enrich.NewFetcher(enrich.NewClient(envs.WikiAPIURL), batchSize, interBatchDelay)
				if err != nil {
					logger.Fatalf("failed to init fetcher: %s", err)
				}

				fetched, err := fetcher.FetchExtracts(missing)
				if err != nil {
					logger.Fatalf("failed to fetch extracts: %s", err)
				}
				for title, extract := range fetched {
					extracts[title] = extract
				}

				if useCache {
					if err = enrich.SaveExtracts(ctx, fetched); err != nil {
						logger.Fatalf("failed to save extracts to cache: %s", err)
					}
				}
			}

			records, err := grid.Assemble(entries, extracts, catalog.GridRows, catalog.GridCols)
			if err != nil {
				logger.Fatalf("failed to assemble element grid: %s", err)
			}

			if err = grid.WriteAsset(output, records); err != nil {
				logger.Fatalf("failed to write asset: %s", err)
			}
			color.Green("asset generated: %d elements in %d cells -> %s", len(entries), len(records), output)
		},
	}

	generateCmd.Flags().StringVar(
		&output, "output", filepath.Join(envs.DataBaseDir, "elements.json"), "asset output path",
	)
	generateCmd.Flags().IntVar(&batchSize, "batch-size", 20, "max titles per extracts request")
	generateCmd.Flags().DurationVar(
		&interBatchDelay, "interval", 3*time.Second, "fixed delay between extracts requests",
	)
	generateCmd.Flags().BoolVar(&useCache, "cache", false, "reuse extracts cached in database")

	return &generateCmd
}

func init() {
	rootCmd.AddCommand(NewGenerateCmd())
}
