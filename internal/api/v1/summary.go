package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type summaryResponse struct {
	Rows    int        `json:"rows"`
	Columns []string   `json:"columns"`
	Preview [][]string `json:"preview"` // 前 N 行原始数据，列顺序与 Columns 一致
}

// GetSummary 获取数据概览（行列数 + 预览行）
// GET /api/summary
func (h *Handler) GetSummary(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "数据集尚未加载"})
		return
	}

	listings := h.store.Listings()

	n := h.cfg.Data.PreviewRows
	if n <= 0 {
		n = 5
	}
	if n > len(listings) {
		n = len(listings)
	}

	preview := make([][]string, 0, n)
	for _, l := range listings[:n] {
		// 原始行可能比表头短（尾部空列被裁剪），补齐到列数
		row := make([]string, len(meta.Columns))
		copy(row, l.Raw)
		preview = append(preview, row)
	}

	c.JSON(http.StatusOK, summaryResponse{
		Rows:    meta.RowCount,
		Columns: meta.Columns,
		Preview: preview,
	})
}
