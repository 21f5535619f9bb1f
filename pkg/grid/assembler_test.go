package grid

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementarium/pkg/catalog"
	"elementarium/pkg/model"
)

// 为全部元素构造完整的简介映射
func fullExtracts() map[string]string {
	extracts := map[string]string{}
	for _, e := range catalog.Entries() {
		extracts[catalog.TitleOf(e.Name)] = "About " + e.Name
	}
	return extracts
}

func TestAssembleFullCatalog(t *testing.T) {
	records, err := Assemble(catalog.Entries(), fullExtracts(), catalog.GridRows, catalog.GridCols)
	require.NoError(t, err)
	assert.Len(t, records, catalog.GridRows*catalog.GridCols)

	count := 0
	for _, record := range records {
		if record != nil {
			count++
		}
	}
	assert.Equal(t, 118, count)
}

// 产物序列位置可按列优先编码还原回网格坐标
func TestPlacementRoundTrip(t *testing.T) {
	records, err := Assemble(catalog.Entries(), fullExtracts(), catalog.GridRows, catalog.GridCols)
	require.NoError(t, err)

	for _, e := range catalog.Entries() {
		index := e.Col*catalog.GridRows + e.Row
		require.NotNil(t, records[index], "symbol %s", e.Symbol)
		assert.Equal(t, e.Symbol, records[index].Symbol)
		// 解码
		assert.Equal(t, e.Col, index/catalog.GridRows)
		assert.Equal(t, e.Row, index%catalog.GridRows)
	}
}

func TestAssembleSingleHydrogen(t *testing.T) {
	entries := []model.Element{{Number: 1, Symbol: "H", Name: "Hydrogen", Col: 0, Row: 0}}
	extracts := map[string]string{"Hydrogen": "Hydrogen is..."}

	records, err := Assemble(entries, extracts, 10, 18)
	require.NoError(t, err)
	require.Len(t, records, 180)

	record := records[0]
	require.NotNil(t, record)
	assert.Equal(t, 1, record.Number)
	assert.Equal(t, "Hydrogen", record.Name)
	assert.Equal(t, "H", record.Symbol)
	assert.Equal(t, "Hydrogen is...", record.Extract)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Hydrogen", record.Source)
	assert.Equal(t, catalog.CategoryReactiveNonmetal, record.Category)
	assert.Equal(t, "1.008 u(±)", record.AtomicWeight)
	assert.Equal(t, model.ColorPair{0xFF536DFE, 0xFF8E99F3}, record.Colors)

	for _, other := range records[1:] {
		assert.Nil(t, other)
	}
}

// 缺简介必须失败并指明符号，不允许用空字符串兜底
func TestAssembleMissingExtract(t *testing.T) {
	extracts := fullExtracts()
	delete(extracts, "Oxygen")

	_, err := Assemble(catalog.Entries(), extracts, catalog.GridRows, catalog.GridCols)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingExtract))
	assert.Contains(t, err.Error(), "symbol O")
	assert.Contains(t, err.Error(), "Oxygen")
}

func TestAssembleDuplicatePlacement(t *testing.T) {
	entries := []model.Element{
		{Number: 1, Symbol: "H", Name: "Hydrogen", Col: 0, Row: 0},
		{Number: 2, Symbol: "He", Name: "Helium", Col: 0, Row: 0},
	}
	extracts := map[string]string{"Hydrogen": "...", "Helium": "..."}

	_, err := Assemble(entries, extracts, 10, 18)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlacement))
	assert.Contains(t, err.Error(), "He")
}

func TestAssembleOutOfBounds(t *testing.T) {
	entries := []model.Element{{Number: 1, Symbol: "H", Name: "Hydrogen", Col: 18, Row: 0}}
	extracts := map[string]string{"Hydrogen": "..."}

	_, err := Assemble(entries, extracts, 10, 18)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlacement))
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestWriteAsset(t *testing.T) {
	records, err := Assemble(catalog.Entries(), fullExtracts(), catalog.GridRows, catalog.GridCols)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "data", "elements.json")
	require.NoError(t, WriteAsset(path, records))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var asset model.ElementsAsset
	require.NoError(t, json.Unmarshal(content, &asset))
	assert.Len(t, asset.Elements, catalog.GridRows*catalog.GridCols)
	// 空格序列化为显式 null（第 0 列第 7 行为分隔空行）
	assert.Nil(t, asset.Elements[7])
	require.NotNil(t, asset.Elements[0])
	assert.Equal(t, "H", asset.Elements[0].Symbol)
}
