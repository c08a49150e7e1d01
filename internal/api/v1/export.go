package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staydash/internal/exporter"
)

const downloadTTL = 10 * time.Minute

// Export 生成数据概要报告（Excel），返回一次性下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "数据集尚未加载"})
		return
	}

	exp := exporter.NewExporter(h.store.Listings(), meta)
	file, err := exp.BuildReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成报告失败: " + err.Error()})
		return
	}
	defer file.Close()

	buf, err := file.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "序列化报告失败: " + err.Error()})
		return
	}

	exportID := uuid.New().String()
	filename := fmt.Sprintf("staydash-report-%s.xlsx", exportID[:8])
	token := h.downloads.put(filename, buf.Bytes(), downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"url":      "/api/export/download/" + token,
	})
}

// DownloadExport 下载已生成的报告，令牌只能使用一次
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}
	h.downloads.delete(token)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		item.data)
}
