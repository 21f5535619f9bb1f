package storage

import (
	"sync"

	"elementarium/pkg/loader"
	"elementarium/pkg/model"
)

var ElementsData *model.ElementsData

var initOnce sync.Once

// InitElementsData 加载并初始化元素周期表数据
func InitElementsData() {
	if ElementsData != nil {
		return
	}
	initOnce.Do(func() {
		var err error
		if ElementsData, err = loader.New().Exec(); err != nil {
			panic(err)
		}
	})
}
