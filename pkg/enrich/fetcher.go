package enrich

import (
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"elementarium/pkg/catalog"
	"elementarium/pkg/logging"
	"elementarium/pkg/model"
)

// Fetcher 元素简介抓取器：按目录顺序分批请求，批间固定休眠限速
type Fetcher struct {
	client *Client
	// 单批最大词条数
	batchSize int
	// 批间休眠时长（维基百科 API 无公开速率上限，保守限速）
	interBatchDelay time.Duration
}

// NewFetcher ...
func NewFetcher(client *Client, batchSize int, interBatchDelay time.Duration) (*Fetcher, error) {
	if batchSize <= 0 {
		return nil, errors.Wrapf(ErrFetch, "batch size must be positive, got %d", batchSize)
	}
	return &Fetcher{client: client, batchSize: batchSize, interBatchDelay: interBatchDelay}, nil
}

// FetchExtracts 抓取全部元素的简介，返回 词条标题 -> 简介 映射。
// 严格顺序执行，任何一批失败则整体失败（不返回部分结果，不重试）
func (f *Fetcher) FetchExtracts(entries []model.Element) (map[string]string, error) {
	logger := logging.GetFetchLogger()

	extracts := make(map[string]string, len(entries))
	batches := lo.Chunk(entries, f.batchSize)
	for idx, batch := range batches {
		titles := make([]string, 0, len(batch))
		for _, e := range batch {
			titles = append(titles, catalog.TitleOf(e.Name))
		}

		pages, err := f.client.QueryExtracts(titles)
		if err != nil {
			return nil, errors.Wrapf(err, "batch %d/%d", idx+1, len(batches))
		}
		for _, page := range pages {
			// 词条缺失或为空时不写入映射，占位交由组装阶段按缺失处理
			if page.Extract == "" {
				continue
			}
			extracts[page.Title] = page.Extract
		}

		logger.WithFields(logrus.Fields{
			"batch":  idx + 1,
			"total":  len(batches),
			"titles": len(titles),
			"pages":  len(pages),
		}).Info("batch fetched")

		// 最后一批之后无需休眠
		if idx != len(batches)-1 {
			time.Sleep(f.interBatchDelay)
		}
	}
	return extracts, nil
}
