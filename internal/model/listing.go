package model

import "time"

// Listing 房源记录
// 数据集中一行对应一条记录；核心字段之外的列仅保留在 Raw 中用于预览
type Listing struct {
	City          string  `json:"city"`
	RoomType      string  `json:"roomType"`
	Price         float64 `json:"price"` // 每晚价格，非负
	Neighbourhood string  `json:"neighbourhood,omitempty"`
	MinimumNights int     `json:"minimumNights,omitempty"`

	Raw []string `json:"-"` // 原始行，按数据集列顺序
}

// DatasetMeta 数据集元信息
// HasCity / HasRoomType 标记可选列是否存在，决定相关图表与估价功能是否可用
type DatasetMeta struct {
	SourceFile  string    `json:"sourceFile"`
	Columns     []string  `json:"columns"`
	RowCount    int       `json:"rowCount"`
	SkippedRows int       `json:"skippedRows"` // 价格缺失/非法而被跳过的行数
	HasCity     bool      `json:"hasCity"`
	HasRoomType bool      `json:"hasRoomType"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// Dataset 一次性加载的只读数据集
type Dataset struct {
	Listings []Listing
	Meta     DatasetMeta
}
