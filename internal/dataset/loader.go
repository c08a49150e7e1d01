package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"staydash/internal/model"
)

var (
	// ErrMissingPriceColumn 数据集缺少 price 列，任何图表与估价都无法工作
	ErrMissingPriceColumn = errors.New("数据集缺少 price 列")
	// ErrEmptyDataset 数据集没有任何有效数据行
	ErrEmptyDataset = errors.New("数据集没有任何有效数据行")
)

// Load 加载数据集文件，整个会话只调用一次
// 支持 .csv 与 .xlsx/.xlsm 两种格式
func Load(path string) (*model.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("数据文件不存在: %s，请将数据集放到该路径或在 config.toml 中修改 data.file", path)
		}
		return nil, fmt.Errorf("无法读取数据文件 %s: %w", path, err)
	}

	var (
		headers []string
		rows    [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		headers, rows, err = readXLSX(path)
	default:
		headers, rows, err = readCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("解析数据文件 %s 失败: %w", path, err)
	}

	return buildDataset(path, headers, rows)
}

// buildDataset 将表头+数据行转换为 Listing 切片
// 缺少可选列不报错，仅在元信息中标记；price 非法的行被跳过并计数
func buildDataset(path string, headers []string, rows [][]string) (*model.Dataset, error) {
	idx := buildColumnIndex(headers)
	if idx.price < 0 {
		return nil, ErrMissingPriceColumn
	}

	listings := make([]model.Listing, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}

		price, ok := parseFloat(cellString(row, idx.price))
		if !ok || price < 0 {
			skipped++
			continue
		}

		l := model.Listing{
			City:          cellString(row, idx.city),
			RoomType:      cellString(row, idx.roomType),
			Price:         price,
			Neighbourhood: cellString(row, idx.neighbourhood),
			Raw:           row,
		}
		if idx.minimumNights >= 0 {
			l.MinimumNights = parseInt(cellString(row, idx.minimumNights))
		}

		listings = append(listings, l)
	}

	if len(listings) == 0 {
		return nil, ErrEmptyDataset
	}

	meta := model.DatasetMeta{
		SourceFile:  path,
		Columns:     headers,
		RowCount:    len(listings),
		SkippedRows: skipped,
		HasCity:     idx.city >= 0,
		HasRoomType: idx.roomType >= 0,
		LoadedAt:    time.Now(),
	}

	return &model.Dataset{Listings: listings, Meta: meta}, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
