package grid

import (
	"encoding/json"
	"os"
	"path/filepath"

	"elementarium/pkg/model"
)

// WriteAsset 将组装结果序列化为 JSON 数据产物并落盘
func WriteAsset(path string, records model.ElementRecords) error {
	content, err := json.MarshalIndent(model.ElementsAsset{Elements: records}, "", "  ")
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
