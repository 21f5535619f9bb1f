package model

// Element 元素（周期表中的一格，坐标为 col 列 row 行）
type Element struct {
	Number int    `json:"number"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Col    int    `json:"col"`
	Row    int    `json:"row"`
}

// Category 元素分类
type Category string

// ColorPair 分类展示颜色对（ARGB）
type ColorPair [2]uint32

// ElementRecord 元素完整记录（带简介等衍生字段，产物 JSON 中的一项）
type ElementRecord struct {
	Number       int       `json:"number"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	Extract      string    `json:"extract"`
	Source       string    `json:"source"`
	Category     Category  `json:"category"`
	AtomicWeight string    `json:"atomic_weight"`
	Colors       ColorPair `json:"colors"`
}

// ElementRecords 元素记录列表（nil 项表示周期表中的空格）
type ElementRecords []*ElementRecord

// ElementsAsset 元素周期表数据产物（按列优先顺序的定长序列）
type ElementsAsset struct {
	Elements ElementRecords `json:"elements"`
}

// ElementsData 元素周期表数据（webserver 启动时加载）
type ElementsData struct {
	Categories []string       `json:"categories"`
	Elements   ElementRecords `json:"elements"`
}

// GetBySymbol 根据符号获取元素记录
func (rs ElementRecords) GetBySymbol(symbol string) *ElementRecord {
	for _, record := range rs {
		if record != nil && record.Symbol == symbol {
			return record
		}
	}
	return nil
}

// FilterByCategory 根据分类过滤元素记录
func (rs ElementRecords) FilterByCategory(category string) ElementRecords {
	var records ElementRecords
	for _, record := range rs {
		if record != nil && string(record.Category) == category {
			records = append(records, record)
		}
	}
	return records
}

// Compact 过滤掉空格，仅保留有元素的记录
func (rs ElementRecords) Compact() ElementRecords {
	var records ElementRecords
	for _, record := range rs {
		if record != nil {
			records = append(records, record)
		}
	}
	return records
}
