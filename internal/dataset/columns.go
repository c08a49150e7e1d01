package dataset

import (
	"regexp"
	"strings"
)

// NormalizeColumnName 规范化列名，去除空格和分隔符并转小写
// "Room Type" / "room_type" / "room-type" 归一为 "roomtype"
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", "")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\t", "")
	re := regexp.MustCompile(`[\s_\-]+`)
	name = re.ReplaceAllString(name, "")
	return strings.ToLower(name)
}

// columnIndex 核心字段在表头中的列下标，-1 表示不存在
type columnIndex struct {
	price         int
	city          int
	roomType      int
	neighbourhood int
	minimumNights int
}

// 列名别名表（规范化后匹配）
var (
	priceAliases         = []string{"price", "nightlyprice", "priceusd"}
	cityAliases          = []string{"city", "town", "municipality"}
	roomTypeAliases      = []string{"roomtype"}
	neighbourhoodAliases = []string{"neighbourhood", "neighborhood", "neighbourhoodcleansed"}
	minimumNightsAliases = []string{"minimumnights", "minnights"}
)

func matchAlias(col string, aliases []string) bool {
	for _, a := range aliases {
		if col == a {
			return true
		}
	}
	return false
}

// buildColumnIndex 解析表头，定位核心字段所在列
func buildColumnIndex(headers []string) columnIndex {
	idx := columnIndex{
		price:         -1,
		city:          -1,
		roomType:      -1,
		neighbourhood: -1,
		minimumNights: -1,
	}

	for i, h := range headers {
		col := NormalizeColumnName(h)
		if col == "" {
			continue
		}

		switch {
		case idx.price < 0 && matchAlias(col, priceAliases):
			idx.price = i
		case idx.city < 0 && matchAlias(col, cityAliases):
			idx.city = i
		case idx.roomType < 0 && matchAlias(col, roomTypeAliases):
			idx.roomType = i
		case idx.neighbourhood < 0 && matchAlias(col, neighbourhoodAliases):
			idx.neighbourhood = i
		case idx.minimumNights < 0 && matchAlias(col, minimumNightsAliases):
			idx.minimumNights = i
		}
	}

	return idx
}
