// Package catalog 周期表元素静态数据（元素表 / 分类 / 颜色 / 原子量 / 词条标题）
package catalog

import (
	"strings"

	"github.com/pkg/errors"

	"elementarium/pkg/model"
)

// 周期表网格尺寸，产物序列按列优先编码（index = col * GridRows + row），
// 消费方完全依赖该编码还原二维布局，不可变更
const (
	// GridRows 网格行数
	GridRows = 10
	// GridCols 网格列数
	GridCols = 18
)

// 元素简介来源链接前缀
const sourceBaseURL = "https://en.wikipedia.org/wiki/"

// ErrLookup 查表失败（数据勘误类缺陷）
var ErrLookup = errors.New("catalog lookup failed")

// 符号 -> 分类直查索引，初始化时构建一次，避免每次线性扫描成员列表
var categoryIndex = make(map[string]model.Category, len(elementTable))

func init() {
	for category, symbols := range categoryMembers {
		for _, symbol := range symbols {
			categoryIndex[symbol] = category
		}
	}
}

// Entries 获取全量元素（顺序即元素表声明顺序）
func Entries() []model.Element {
	return elementTable
}

// CategoryOf 根据符号获取元素分类
func CategoryOf(symbol string) (model.Category, error) {
	category, ok := categoryIndex[symbol]
	if !ok {
		return "", errors.Wrapf(ErrLookup, "no category contains symbol %s", symbol)
	}
	return category, nil
}

// ColorsOf 获取分类的展示颜色对
func ColorsOf(category model.Category) (model.ColorPair, error) {
	colors, ok := categoryColors[category]
	if !ok {
		return model.ColorPair{}, errors.Wrapf(ErrLookup, "no colors for category %s", category)
	}
	return colors, nil
}

// AtomicWeightOf 根据符号获取原子量展示字符串
func AtomicWeightOf(symbol string) (string, error) {
	weight, ok := atomicWeights[symbol]
	if !ok {
		return "", errors.Wrapf(ErrLookup, "no atomic weight for symbol %s", symbol)
	}
	return weight, nil
}

// TitleOf 根据元素名获取维基百科词条标题（无特例时即元素名本身）
func TitleOf(name string) string {
	if title, ok := titleOverrides[name]; ok {
		return title
	}
	return name
}

// SourceURL 根据词条标题生成来源链接
func SourceURL(title string) string {
	return sourceBaseURL + strings.ReplaceAll(title, " ", "_")
}

// Validate 校验元素静态数据的完整性（封闭世界约束），
// 任何失败都是数据勘误类缺陷，与运行时输入无关
func Validate() error {
	for _, f := range []func() error{
		checkUniqueness,
		checkCategoryPartition,
		checkColorCoverage,
		checkWeightCoverage,
		checkTitleOverrides,
		checkPlacement,
	} {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}
