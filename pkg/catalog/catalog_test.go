package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementarium/pkg/model"
)

func TestEntries(t *testing.T) {
	entries := Entries()
	assert.Len(t, entries, 118)

	numbers := map[int]bool{}
	symbols := map[string]bool{}
	names := map[string]bool{}
	for _, e := range entries {
		assert.False(t, numbers[e.Number], "duplicate atomic number %d", e.Number)
		assert.False(t, symbols[e.Symbol], "duplicate symbol %s", e.Symbol)
		assert.False(t, names[e.Name], "duplicate name %s", e.Name)
		numbers[e.Number] = true
		symbols[e.Symbol] = true
		names[e.Name] = true
	}
}

// 封闭世界约束：四个查询对全部 118 个元素都必须有值
func TestLookupCoverage(t *testing.T) {
	for _, e := range Entries() {
		category, err := CategoryOf(e.Symbol)
		require.NoError(t, err, "symbol %s", e.Symbol)

		_, err = ColorsOf(category)
		require.NoError(t, err, "category %s", category)

		weight, err := AtomicWeightOf(e.Symbol)
		require.NoError(t, err, "symbol %s", e.Symbol)
		assert.NotEmpty(t, weight)

		assert.NotEmpty(t, TitleOf(e.Name))
	}
}

func TestColorsOfAllCategories(t *testing.T) {
	for _, category := range allCategories {
		colors, err := ColorsOf(category)
		require.NoError(t, err)
		assert.NotZero(t, colors[0])
		assert.NotZero(t, colors[1])
	}
}

func TestCategoryOfUnknownSymbol(t *testing.T) {
	_, err := CategoryOf("Xx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookup))
	assert.Contains(t, err.Error(), "Xx")
}

func TestAtomicWeightOfUnknownSymbol(t *testing.T) {
	_, err := AtomicWeightOf("Xx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookup))
}

func TestTitleOf(t *testing.T) {
	// 特例映射
	assert.Equal(t, "Mercury (element)", TitleOf("Mercury"))
	// 默认取元素名
	assert.Equal(t, "Hydrogen", TitleOf("Hydrogen"))
	assert.Equal(t, "Oganesson", TitleOf("Oganesson"))
}

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "https://en.wikipedia.org/wiki/Hydrogen", SourceURL("Hydrogen"))
	// 标题中的空格替换为下划线
	assert.Equal(t, "https://en.wikipedia.org/wiki/Mercury_(element)", SourceURL("Mercury (element)"))
}

// 网格摆放必须是单射且全部在界内
func TestPlacementInjective(t *testing.T) {
	occupied := map[int]string{}
	for _, e := range Entries() {
		assert.GreaterOrEqual(t, e.Col, 0)
		assert.Less(t, e.Col, GridCols)
		assert.GreaterOrEqual(t, e.Row, 0)
		assert.Less(t, e.Row, GridRows)

		index := e.Col*GridRows + e.Row
		prev, ok := occupied[index]
		assert.False(t, ok, "symbol %s and %s share index %d", prev, e.Symbol, index)
		occupied[index] = e.Symbol
	}
}

func TestHydrogen(t *testing.T) {
	category, err := CategoryOf("H")
	require.NoError(t, err)
	assert.Equal(t, CategoryReactiveNonmetal, category)

	colors, err := ColorsOf(category)
	require.NoError(t, err)
	assert.Equal(t, model.ColorPair{0xFF536DFE, 0xFF8E99F3}, colors)

	weight, err := AtomicWeightOf("H")
	require.NoError(t, err)
	assert.Equal(t, "1.008 u(±)", weight)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}
