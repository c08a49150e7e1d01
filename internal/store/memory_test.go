package store

import (
	"testing"
	"time"

	"staydash/internal/model"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Listings: []model.Listing{
			{City: "Paris", RoomType: "Private room", Price: 80},
			{City: "Berlin", RoomType: "Entire home", Price: 100},
			{City: "Paris", RoomType: "Entire home", Price: 120},
			{City: "", RoomType: "", Price: 60},
		},
		Meta: model.DatasetMeta{
			RowCount:    4,
			HasCity:     true,
			HasRoomType: true,
			LoadedAt:    time.Now(),
		},
	}
}

func TestMemoryStoreNotLoaded(t *testing.T) {
	s := NewMemoryStore()

	if s.Loaded() {
		t.Fatalf("empty store reports loaded")
	}
	if s.Count() != 0 {
		t.Fatalf("count = %d, want 0", s.Count())
	}
	if _, err := s.Meta(); err != ErrNotLoaded {
		t.Fatalf("meta err = %v, want ErrNotLoaded", err)
	}
}

func TestMemoryStoreSetDataset(t *testing.T) {
	s := NewMemoryStore()
	s.SetDataset(testDataset())

	if !s.Loaded() {
		t.Fatalf("store not loaded after SetDataset")
	}
	if s.Count() != 4 {
		t.Fatalf("count = %d, want 4", s.Count())
	}
	meta, err := s.Meta()
	if err != nil {
		t.Fatalf("meta: %v", err)
	}
	if !meta.HasCity {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestMemoryStoreDistinctSortedSkipsMissing(t *testing.T) {
	s := NewMemoryStore()
	s.SetDataset(testDataset())

	cities := s.Cities()
	if len(cities) != 2 || cities[0] != "Berlin" || cities[1] != "Paris" {
		t.Fatalf("cities = %v, want [Berlin Paris]", cities)
	}

	roomTypes := s.RoomTypes()
	if len(roomTypes) != 2 || roomTypes[0] != "Entire home" || roomTypes[1] != "Private room" {
		t.Fatalf("room types = %v, want [Entire home, Private room]", roomTypes)
	}
}
