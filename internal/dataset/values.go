package dataset

import (
	"strconv"
	"strings"
)

// cellString 取行中指定列的字符串值，下标越界返回空串
func cellString(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseFloat 解析数值，容忍货币符号与千分位
// "$1,234.56" / "1234.56" / " 120 " 均可解析
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimPrefix(s, "£")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseInt 解析整数，失败返回 0
func parseInt(s string) int {
	v, ok := parseFloat(s)
	if !ok {
		return 0
	}
	return int(v)
}
