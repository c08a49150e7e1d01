package estimator

import (
	"errors"
	"time"

	"staydash/internal/model"
	"staydash/internal/service/stats"
)

var (
	// ErrEmptyDataset 数据集为空，无法计算基准价
	ErrEmptyDataset = errors.New("数据集为空，无法估价")
	// ErrInvalidDateRange 退房日期必须晚于入住日期
	ErrInvalidDateRange = errors.New("退房日期必须晚于入住日期")
)

// MultiplierRules 按日期的价格乘数规则
// 三个条件相互独立，同一晚可叠乘（如 7 月的周五 = 1.30 * 1.20）
type MultiplierRules struct {
	Weekend  float64 // 周五/周六
	Summer   float64 // 6-8 月
	December float64 // 12 月
}

// DefaultRules 默认乘数规则
func DefaultRules() MultiplierRules {
	return MultiplierRules{
		Weekend:  1.30,
		Summer:   1.20,
		December: 1.40,
	}
}

// DateMultiplier 计算某一晚的价格乘数
func (r MultiplierRules) DateMultiplier(d time.Time) float64 {
	m := 1.0

	switch d.Weekday() {
	case time.Friday, time.Saturday:
		m *= r.Weekend
	}

	switch d.Month() {
	case time.June, time.July, time.August:
		m *= r.Summer
	case time.December:
		m *= r.December
	}

	return m
}

// Estimate 估价结果
type Estimate struct {
	City          string  `json:"city"`
	RoomType      string  `json:"roomType"`
	BasePrice     float64 `json:"basePrice"`     // 历史数据中位数基准价
	AvgMultiplier float64 `json:"avgMultiplier"` // 各晚乘数的算术平均
	PricePerNight float64 `json:"pricePerNight"` // BasePrice * AvgMultiplier
	Nights        int     `json:"nights"`        // 仅用于展示，不参与价格计算
}

// Estimator 基于历史房源数据的规则估价器
// 无状态：对同一数据集与查询总是返回相同结果
type Estimator struct {
	listings []model.Listing
	rules    MultiplierRules
}

// New 创建估价器
func New(listings []model.Listing, rules MultiplierRules) *Estimator {
	return &Estimator{
		listings: listings,
		rules:    rules,
	}
}

// Estimate 计算指定城市/房型在指定日期区间的每晚估价
// 入住到退房为左闭右开区间，退房当天不计入
func (e *Estimator) Estimate(city, roomType string, checkIn, checkOut time.Time) (*Estimate, error) {
	if len(e.listings) == 0 {
		return nil, ErrEmptyDataset
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	basePrice, err := e.basePrice(city, roomType)
	if err != nil {
		return nil, err
	}

	avgMult := e.stayMultiplier(checkIn, checkOut)
	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	return &Estimate{
		City:          city,
		RoomType:      roomType,
		BasePrice:     basePrice,
		AvgMultiplier: avgMult,
		PricePerNight: basePrice * avgMult,
		Nights:        nights,
	}, nil
}

// basePrice 基准价回退链
// 城市+房型精确匹配 → 仅城市匹配 → 全量数据，取中位数
func (e *Estimator) basePrice(city, roomType string) (float64, error) {
	subset := e.pricesWhere(func(l model.Listing) bool {
		return l.City == city && l.RoomType == roomType
	})
	if len(subset) == 0 {
		subset = e.pricesWhere(func(l model.Listing) bool {
			return l.City == city
		})
	}
	if len(subset) == 0 {
		subset = stats.Prices(e.listings)
	}

	return stats.Median(subset)
}

func (e *Estimator) pricesWhere(match func(model.Listing) bool) []float64 {
	var prices []float64
	for _, l := range e.listings {
		if match(l) {
			prices = append(prices, l.Price)
		}
	}
	return prices
}

// stayMultiplier 整段住宿的有效乘数：各晚乘数的算术平均
// 零晚区间不应出现（调用前已校验），保底返回 1.0
func (e *Estimator) stayMultiplier(checkIn, checkOut time.Time) float64 {
	sum := 0.0
	nights := 0
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		sum += e.rules.DateMultiplier(d)
		nights++
	}
	if nights == 0 {
		return 1.0
	}
	return sum / float64(nights)
}
