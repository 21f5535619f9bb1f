package loader

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/TencentBlueKing/gopkg/collection/set"

	"elementarium/pkg/envs"
	"elementarium/pkg/model"
)

// AssetLoader 元素周期表数据产物加载器（webserver 启动时使用）
type AssetLoader struct {
	assetPath    string
	elementsData model.ElementsData
}

// New ...
func New() *AssetLoader {
	return &AssetLoader{
		assetPath:    filepath.Join(envs.DataBaseDir, "elements.json"),
		elementsData: model.ElementsData{},
	}
}

// NewWithPath 指定数据产物路径（测试用）
func NewWithPath(assetPath string) *AssetLoader {
	return &AssetLoader{assetPath: assetPath, elementsData: model.ElementsData{}}
}

func (l *AssetLoader) Exec() (*model.ElementsData, error) {
	for _, f := range []func() error{
		l.loadElements,
		l.collectCategories,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return &l.elementsData, nil
}

// 加载 generate 产出的元素数据
func (l *AssetLoader) loadElements() error {
	content, err := os.ReadFile(l.assetPath)
	if err != nil {
		return err
	}

	var asset model.ElementsAsset
	if err = json.Unmarshal(content, &asset); err != nil {
		return err
	}
	l.elementsData.Elements = asset.Elements
	return nil
}

// 从元素数据中采集分类信息
func (l *AssetLoader) collectCategories() error {
	categories := set.NewStringSet()
	for _, record := range l.elementsData.Elements {
		if record != nil {
			categories.Append(string(record.Category))
		}
	}
	l.elementsData.Categories = categories.ToSlice()
	return nil
}
