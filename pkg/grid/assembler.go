// Package grid 周期表网格组装：按坐标摆放元素并生成完整记录序列
package grid

import (
	"github.com/pkg/errors"

	"elementarium/pkg/catalog"
	"elementarium/pkg/model"
)

var (
	// ErrPlacement 网格坐标越界或重复（数据勘误类缺陷）
	ErrPlacement = errors.New("grid placement failed")

	// ErrMissingExtract 元素缺少简介（抓取结果未覆盖该词条）
	ErrMissingExtract = errors.New("extract missing")
)

// Assemble 将元素摆放进 rows x cols 的网格并生成完整记录序列。
// 返回序列长度恒为 rows*cols，未被占用的格子为 nil；
// 序列按列优先编码（index = col * rows + row），消费方依赖该顺序还原布局
func Assemble(
	entries []model.Element, extracts map[string]string, rows, cols int,
) (model.ElementRecords, error) {
	records := make(model.ElementRecords, rows*cols)
	for _, e := range entries {
		if e.Col < 0 || e.Col >= cols || e.Row < 0 || e.Row >= rows {
			return nil, errors.Wrapf(
				ErrPlacement, "symbol %s out of bounds (col %d, row %d)", e.Symbol, e.Col, e.Row,
			)
		}
		index := e.Col*rows + e.Row
		if records[index] != nil {
			return nil, errors.Wrapf(
				ErrPlacement, "symbol %s conflicts with %s at index %d", e.Symbol, records[index].Symbol, index,
			)
		}

		record, err := buildRecord(e, extracts)
		if err != nil {
			return nil, err
		}
		records[index] = record
	}
	return records, nil
}

// 生成单个元素的完整记录，任一衍生字段缺失则失败
func buildRecord(e model.Element, extracts map[string]string) (*model.ElementRecord, error) {
	title := catalog.TitleOf(e.Name)

	extract, ok := extracts[title]
	if !ok {
		// 不允许用空字符串兜底，缺简介即失败
		return nil, errors.Wrapf(ErrMissingExtract, "symbol %s (title %s)", e.Symbol, title)
	}

	category, err := catalog.CategoryOf(e.Symbol)
	if err != nil {
		return nil, err
	}
	colors, err := catalog.ColorsOf(category)
	if err != nil {
		return nil, err
	}
	weight, err := catalog.AtomicWeightOf(e.Symbol)
	if err != nil {
		return nil, err
	}

	return &model.ElementRecord{
		Number:       e.Number,
		Name:         e.Name,
		Symbol:       e.Symbol,
		Extract:      extract,
		Source:       catalog.SourceURL(title),
		Category:     category,
		AtomicWeight: weight,
		Colors:       colors,
	}, nil
}
