package catalog

import (
	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"
)

// 校验原子序数 / 符号 / 元素名均无重复
func checkUniqueness() error {
	numbers := map[int]bool{}
	symbols := set.NewStringSet()
	names := set.NewStringSet()
	for _, e := range elementTable {
		if numbers[e.Number] {
			return errors.Wrapf(ErrLookup, "duplicate atomic number %d", e.Number)
		}
		numbers[e.Number] = true

		if symbols.Has(e.Symbol) {
			return errors.Wrapf(ErrLookup, "duplicate symbol %s", e.Symbol)
		}
		symbols.Append(e.Symbol)

		if names.Has(e.Name) {
			return errors.Wrapf(ErrLookup, "duplicate name %s", e.Name)
		}
		names.Append(e.Name)
	}
	return nil
}

// 校验分类成员列表恰好划分全部元素（每个符号属于且仅属于一个分类）
func checkCategoryPartition() error {
	tableSymbols := set.NewStringSet()
	for _, e := range elementTable {
		tableSymbols.Append(e.Symbol)
	}

	memberCount := 0
	for category, members := range categoryMembers {
		for _, symbol := range members {
			if !tableSymbols.Has(symbol) {
				return errors.Wrapf(ErrLookup, "category %s member %s not in element table", category, symbol)
			}
			memberCount++
		}
	}
	// 成员总数与元素总数相等 + 每个符号可查到分类 => 恰好划分
	if memberCount != len(elementTable) {
		return errors.Wrapf(
			ErrLookup, "category members count %d != element count %d (overlap or gap)",
			memberCount, len(elementTable),
		)
	}
	for _, e := range elementTable {
		if _, err := CategoryOf(e.Symbol); err != nil {
			return err
		}
	}
	return nil
}

// 校验每个分类都有颜色对
func checkColorCoverage() error {
	for _, category := range allCategories {
		if _, err := ColorsOf(category); err != nil {
			return err
		}
	}
	return nil
}

// 校验每个元素都有原子量
func checkWeightCoverage() error {
	for _, e := range elementTable {
		if _, err := AtomicWeightOf(e.Symbol); err != nil {
			return err
		}
	}
	return nil
}

// 校验词条标题特例映射中的元素名真实存在
func checkTitleOverrides() error {
	tableNames := set.NewStringSet()
	for _, e := range elementTable {
		tableNames.Append(e.Name)
	}
	for name := range titleOverrides {
		if !tableNames.Has(name) {
			return errors.Wrapf(ErrLookup, "title override for unknown name %s", name)
		}
	}
	return nil
}

// 校验网格坐标均在界内且无重复（单射）
func checkPlacement() error {
	occupied := map[int]string{}
	for _, e := range elementTable {
		if e.Col < 0 || e.Col >= GridCols || e.Row < 0 || e.Row >= GridRows {
			return errors.Wrapf(ErrLookup, "symbol %s placed out of bounds (col %d, row %d)", e.Symbol, e.Col, e.Row)
		}
		index := e.Col*GridRows + e.Row
		if prev, ok := occupied[index]; ok {
			return errors.Wrapf(ErrLookup, "symbol %s and %s share grid index %d", prev, e.Symbol, index)
		}
		occupied[index] = e.Symbol
	}
	return nil
}
