package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"staydash/internal/model"
	"staydash/internal/service/stats"
)

// Exporter 数据概要报告导出器
// 输出仅在内存中生成，由下载接口直接写回响应，不落盘
type Exporter struct {
	listings []model.Listing
	meta     model.DatasetMeta
}

// NewExporter 创建导出器
func NewExporter(listings []model.Listing, meta model.DatasetMeta) *Exporter {
	return &Exporter{
		listings: listings,
		meta:     meta,
	}
}

// BuildReport 生成概要报告工作簿
// 包含 概览 / 房型 / 城市 三个 Sheet，可选列缺失时跳过对应 Sheet
func (e *Exporter) BuildReport() (*excelize.File, error) {
	if len(e.listings) == 0 {
		return nil, stats.ErrNoData
	}

	f := excelize.NewFile()

	if err := e.writeOverviewSheet(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	if e.meta.HasRoomType {
		if err := e.writeRoomTypeSheet(f); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	if e.meta.HasCity {
		if err := e.writeCitySheet(f); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) writeOverviewSheet(f *excelize.File) error {
	const sheet = "概览"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	prices := stats.Prices(e.listings)
	mean, err := stats.Mean(prices)
	if err != nil {
		return err
	}
	median, err := stats.Median(prices)
	if err != nil {
		return err
	}

	rows := [][]interface{}{
		{"数据文件", e.meta.SourceFile},
		{"记录数", e.meta.RowCount},
		{"列数", len(e.meta.Columns)},
		{"跳过行数", e.meta.SkippedRows},
		{"平均每晚价格", mean},
		{"中位每晚价格", median},
		{"加载时间", e.meta.LoadedAt.Format("2006-01-02 15:04:05")},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) writeRoomTypeSheet(f *excelize.File) error {
	const sheet = "房型"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	avgs, err := stats.AvgPriceByRoomType(e.listings)
	if err != nil {
		return err
	}
	shares, err := stats.RoomTypeShare(e.listings)
	if err != nil {
		return err
	}
	shareByName := make(map[string]float64, len(shares))
	for _, s := range shares {
		shareByName[s.Name] = s.Percent
	}

	header := []interface{}{"房型", "平均每晚价格", "记录数", "占比(%)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, a := range avgs {
		row := []interface{}{a.Name, a.AvgPrice, a.Count, shareByName[a.Name]}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) writeCitySheet(f *excelize.File) error {
	const sheet = "城市"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	top, err := stats.TopCitiesByAvgPrice(e.listings, 10)
	if err != nil {
		return err
	}

	header := []interface{}{"城市", "平均每晚价格", "记录数"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range top {
		row := []interface{}{c.Name, c.AvgPrice, c.Count}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}
