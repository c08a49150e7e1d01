package stats

import (
	"errors"
	"testing"

	"staydash/internal/model"
)

func chartListings() []model.Listing {
	return []model.Listing{
		{City: "A", RoomType: "Entire home", Price: 100},
		{City: "A", RoomType: "Entire home", Price: 120},
		{City: "A", RoomType: "Private room", Price: 50},
		{City: "B", RoomType: "Entire home", Price: 200},
		{City: "B", RoomType: "Shared room", Price: 30},
		{City: "C", RoomType: "Private room", Price: 80},
	}
}

func TestAvgPriceByRoomTypeOrder(t *testing.T) {
	items, err := AvgPriceByRoomType(chartListings())
	if err != nil {
		t.Fatalf("avg by room type: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("got %d room types, want 3", len(items))
	}
	// Entire home (100+120+200)/3=140 > Private room 65 > Shared room 30
	if items[0].Name != "Entire home" || !almostEqual(items[0].AvgPrice, 140) {
		t.Fatalf("items[0] = %+v, want Entire home avg 140", items[0])
	}
	if items[1].Name != "Private room" || !almostEqual(items[1].AvgPrice, 65) {
		t.Fatalf("items[1] = %+v, want Private room avg 65", items[1])
	}
	if items[2].Name != "Shared room" {
		t.Fatalf("items[2] = %+v, want Shared room", items[2])
	}
}

func TestRoomTypeShare(t *testing.T) {
	items, err := RoomTypeShare(chartListings())
	if err != nil {
		t.Fatalf("room type share: %v", err)
	}

	if items[0].Name != "Entire home" || items[0].Count != 3 {
		t.Fatalf("items[0] = %+v, want Entire home count 3", items[0])
	}
	if !almostEqual(items[0].Percent, 50) {
		t.Fatalf("percent = %v, want 50", items[0].Percent)
	}

	total := 0.0
	for _, it := range items {
		total += it.Percent
	}
	if !almostEqual(total, 100) {
		t.Fatalf("percent sum = %v, want 100", total)
	}
}

func TestRoomTypeShareSkipsMissingValues(t *testing.T) {
	listings := []model.Listing{
		{RoomType: "Entire home", Price: 100},
		{RoomType: "", Price: 50},
	}

	items, err := RoomTypeShare(listings)
	if err != nil {
		t.Fatalf("room type share: %v", err)
	}
	if len(items) != 1 || items[0].Count != 1 {
		t.Fatalf("items = %+v, want single Entire home count 1", items)
	}
	if !almostEqual(items[0].Percent, 100) {
		t.Fatalf("percent = %v, want 100 (missing values excluded)", items[0].Percent)
	}
}

func TestTopCitiesByAvgPriceLimit(t *testing.T) {
	items, err := TopCitiesByAvgPrice(chartListings(), 2)
	if err != nil {
		t.Fatalf("top cities: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d cities, want 2", len(items))
	}
	// B (200+30)/2=115 > A (100+120+50)/3=90 > C 80
	if items[0].Name != "B" || !almostEqual(items[0].AvgPrice, 115) {
		t.Fatalf("items[0] = %+v, want B avg 115", items[0])
	}
	if items[1].Name != "A" {
		t.Fatalf("items[1] = %+v, want A", items[1])
	}
}

func TestBuildPriceHistogram(t *testing.T) {
	listings := make([]model.Listing, 0, 100)
	for i := 0; i < 100; i++ {
		listings = append(listings, model.Listing{Price: float64(i + 1)})
	}

	hist, err := BuildPriceHistogram(listings, 10)
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}

	if len(hist.Bins) != 10 {
		t.Fatalf("got %d bins, want 10", len(hist.Bins))
	}

	counted := 0
	for _, b := range hist.Bins {
		counted += b.Count
	}
	if counted != hist.Included {
		t.Fatalf("bin counts sum %d != included %d", counted, hist.Included)
	}
	// 99 分位截断应排除最大的极端值
	if hist.Included >= 100 {
		t.Fatalf("included = %d, want < 100 after cap", hist.Included)
	}
}

func TestBuildPriceHistogramUniformPrices(t *testing.T) {
	listings := []model.Listing{{Price: 80}, {Price: 80}, {Price: 80}}

	hist, err := BuildPriceHistogram(listings, 50)
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}
	if len(hist.Bins) != 1 || hist.Bins[0].Count != 3 {
		t.Fatalf("bins = %+v, want single bin with count 3", hist.Bins)
	}
}

func TestBuildPriceHistogramEmpty(t *testing.T) {
	if _, err := BuildPriceHistogram(nil, 50); !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}
