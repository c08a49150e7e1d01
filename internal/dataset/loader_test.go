package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadBasicCSV(t *testing.T) {
	path := writeCSV(t, "city,room_type,price\nBerlin,Entire home,100\nParis,Private room,80\n")

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(ds.Listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(ds.Listings))
	}
	if !ds.Meta.HasCity || !ds.Meta.HasRoomType {
		t.Fatalf("meta = %+v, want city and room_type present", ds.Meta)
	}
	if ds.Listings[0].City != "Berlin" || ds.Listings[0].Price != 100 {
		t.Fatalf("listings[0] = %+v", ds.Listings[0])
	}
}

func TestLoadHeaderAliases(t *testing.T) {
	// "Room Type" / "Town" 形式的表头也应被识别
	path := writeCSV(t, "Town,Room Type,Price\nOslo,Shared room,\"$1,200.50\"\n")

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ds.Meta.HasCity || !ds.Meta.HasRoomType {
		t.Fatalf("meta = %+v, want aliased columns resolved", ds.Meta)
	}
	if ds.Listings[0].Price != 1200.50 {
		t.Fatalf("price = %v, want 1200.50", ds.Listings[0].Price)
	}
}

func TestLoadSkipsInvalidPriceRows(t *testing.T) {
	path := writeCSV(t, "city,room_type,price\nBerlin,Entire home,100\nParis,Private room,abc\nRome,Entire home,-5\n")

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Listings) != 1 {
		t.Fatalf("got %d listings, want 1", len(ds.Listings))
	}
	if ds.Meta.SkippedRows != 2 {
		t.Fatalf("skipped = %d, want 2", ds.Meta.SkippedRows)
	}
}

func TestLoadMissingOptionalColumns(t *testing.T) {
	path := writeCSV(t, "price\n100\n80\n")

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Meta.HasCity || ds.Meta.HasRoomType {
		t.Fatalf("meta = %+v, want optional columns marked missing", ds.Meta)
	}
	if len(ds.Listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(ds.Listings))
	}
}

func TestLoadMissingPriceColumn(t *testing.T) {
	path := writeCSV(t, "city,room_type\nBerlin,Entire home\n")

	_, err := Load(path)
	if !errors.Is(err, ErrMissingPriceColumn) {
		t.Fatalf("err = %v, want ErrMissingPriceColumn", err)
	}
}

func TestLoadEmptyDataset(t *testing.T) {
	path := writeCSV(t, "city,room_type,price\n")

	_, err := Load(path)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestLoadMissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name path %q", err.Error(), path)
	}
}

func TestNormalizeColumnName(t *testing.T) {
	cases := map[string]string{
		"Room Type":    "roomtype",
		" room_type ":  "roomtype",
		"ROOM-TYPE":    "roomtype",
		"price\n":      "price",
		"  Nightly\tPrice ": "nightlyprice",
	}
	for in, want := range cases {
		if got := NormalizeColumnName(in); got != want {
			t.Fatalf("NormalizeColumnName(%q) = %q, want %q", in, got, want)
		}
	}
}
