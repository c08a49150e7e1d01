package stats

import (
	"sort"

	"staydash/internal/model"
)

// HistogramBin 价格直方图的一个分箱，区间为 [Start, End)，末箱闭区间
type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// PriceHistogram 价格分布直方图
type PriceHistogram struct {
	Bins     []HistogramBin `json:"bins"`
	Cap      float64        `json:"cap"`      // 99 分位截断值
	Included int            `json:"included"` // 截断后参与统计的记录数
}

// CategoryAvg 分组平均价
type CategoryAvg struct {
	Name     string  `json:"name"`
	AvgPrice float64 `json:"avgPrice"`
	Count    int     `json:"count"`
}

// CategoryShare 分组占比
type CategoryShare struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Prices 提取全部价格
func Prices(listings []model.Listing) []float64 {
	prices := make([]float64, 0, len(listings))
	for _, l := range listings {
		prices = append(prices, l.Price)
	}
	return prices
}

// BuildPriceHistogram 价格分布直方图
// 先按 99 分位截断极端值，再做 bins 个等宽分箱
func BuildPriceHistogram(listings []model.Listing, bins int) (*PriceHistogram, error) {
	prices := Prices(listings)
	if len(prices) == 0 {
		return nil, ErrNoData
	}
	if bins <= 0 {
		bins = 50
	}

	cap99, err := Quantile(prices, 0.99)
	if err != nil {
		return nil, err
	}

	capped := make([]float64, 0, len(prices))
	for _, p := range prices {
		if p <= cap99 {
			capped = append(capped, p)
		}
	}
	if len(capped) == 0 {
		return nil, ErrNoData
	}

	minV, maxV := capped[0], capped[0]
	for _, p := range capped {
		if p < minV {
			minV = p
		}
		if p > maxV {
			maxV = p
		}
	}

	// 所有价格相同时只有一个箱
	if maxV == minV {
		return &PriceHistogram{
			Bins:     []HistogramBin{{Start: minV, End: maxV, Count: len(capped)}},
			Cap:      cap99,
			Included: len(capped),
		}, nil
	}

	width := (maxV - minV) / float64(bins)
	result := make([]HistogramBin, bins)
	for i := range result {
		result[i] = HistogramBin{
			Start: minV + float64(i)*width,
			End:   minV + float64(i+1)*width,
		}
	}

	for _, p := range capped {
		idx := int((p - minV) / width)
		if idx >= bins {
			idx = bins - 1 // 最大值落入末箱
		}
		result[idx].Count++
	}

	return &PriceHistogram{Bins: result, Cap: cap99, Included: len(capped)}, nil
}

// AvgPriceByRoomType 各房型平均价，按平均价降序
func AvgPriceByRoomType(listings []model.Listing) ([]CategoryAvg, error) {
	return avgPriceBy(listings, func(l model.Listing) string { return l.RoomType }, 0)
}

// TopCitiesByAvgPrice 平均价最高的前 limit 个城市
func TopCitiesByAvgPrice(listings []model.Listing, limit int) ([]CategoryAvg, error) {
	return avgPriceBy(listings, func(l model.Listing) string { return l.City }, limit)
}

func avgPriceBy(listings []model.Listing, key func(model.Listing) string, limit int) ([]CategoryAvg, error) {
	if len(listings) == 0 {
		return nil, ErrNoData
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, l := range listings {
		k := key(l)
		if k == "" {
			continue
		}
		sums[k] += l.Price
		counts[k]++
	}
	if len(sums) == 0 {
		return nil, ErrNoData
	}

	result := make([]CategoryAvg, 0, len(sums))
	for k, sum := range sums {
		result = append(result, CategoryAvg{
			Name:     k,
			AvgPrice: sum / float64(counts[k]),
			Count:    counts[k],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AvgPrice != result[j].AvgPrice {
			return result[i].AvgPrice > result[j].AvgPrice
		}
		return result[i].Name < result[j].Name
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// RoomTypeShare 各房型记录数占比，按数量降序
func RoomTypeShare(listings []model.Listing) ([]CategoryShare, error) {
	if len(listings) == 0 {
		return nil, ErrNoData
	}

	counts := make(map[string]int)
	total := 0
	for _, l := range listings {
		if l.RoomType == "" {
			continue
		}
		counts[l.RoomType]++
		total++
	}
	if total == 0 {
		return nil, ErrNoData
	}

	result := make([]CategoryShare, 0, len(counts))
	for k, c := range counts {
		result = append(result, CategoryShare{
			Name:    k,
			Count:   c,
			Percent: float64(c) / float64(total) * 100,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}
