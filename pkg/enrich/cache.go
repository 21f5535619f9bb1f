package enrich

import (
	"context"

	"gorm.io/gorm/clause"

	"elementarium/pkg/infras/database"
	"elementarium/pkg/model"
)

// LoadCachedExtracts 加载已缓存的全部简介（词条标题 -> 简介）
func LoadCachedExtracts(ctx context.Context) (map[string]string, error) {
	var records []model.ExtractRecord
	if err := database.Client(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	extracts := make(map[string]string, len(records))
	for _, record := range records {
		extracts[record.Title] = record.Extract
	}
	return extracts, nil
}

// SaveExtracts 将简介写入缓存（已存在的词条跳过）
func SaveExtracts(ctx context.Context, extracts map[string]string) error {
	if len(extracts) == 0 {
		return nil
	}

	records := make([]model.ExtractRecord, 0, len(extracts))
	for title, extract := range extracts {
		records = append(records, model.ExtractRecord{Title: title, Extract: extract})
	}
	return database.Client(ctx).Clauses(
		clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true},
	).Create(&records).Error
}
