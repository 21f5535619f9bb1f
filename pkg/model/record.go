package model

// ElementViewRecord 元素详情查看记录
type ElementViewRecord struct {
	BaseModel
	ID     int64  `json:"id" gorm:"primaryKey"`
	IP     string `json:"ip" gorm:"type:varchar(64);not null"`
	Symbol string `json:"symbol" gorm:"type:varchar(8);not null"`
}

// ExtractRecord 元素简介缓存（generate --cache 时复用已抓取的简介）
type ExtractRecord struct {
	BaseModel
	ID      int64  `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"type:varchar(128);uniqueIndex;not null"`
	Extract string `json:"extract" gorm:"type:text;not null"`
}
