package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized bool   `json:"initialized"` // 是否已加载数据
	Rows        int    `json:"rows"`        // 记录数
	Columns     int    `json:"columns"`     // 列数
	Cities      int    `json:"cities"`      // 城市数
	RoomTypes   int    `json:"roomTypes"`   // 房型数
	SkippedRows int    `json:"skippedRows"` // 加载时跳过的无效行数
	SourceFile  string `json:"sourceFile"`  // 数据文件
	LoadedAt    string `json:"loadedAt"`    // 加载时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{
			Initialized: false,
		})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized: h.store.Loaded(),
		Rows:        meta.RowCount,
		Columns:     len(meta.Columns),
		Cities:      len(h.store.Cities()),
		RoomTypes:   len(h.store.RoomTypes()),
		SkippedRows: meta.SkippedRows,
		SourceFile:  meta.SourceFile,
		LoadedAt:    meta.LoadedAt.Format("2006-01-02 15:04:05"),
	})
}
