package util

import (
	"fmt"
	"strings"
)

// FormatCurrency 格式化美元金额（千分位 + 两位小数）
// 123456.7 -> "$123,456.70"
func FormatCurrency(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := fmt.Sprintf("%.2f", value)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	result := "$" + b.String() + fracPart
	if neg {
		result = "-" + result
	}
	return result
}

// FormatPercent 格式化百分比
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
