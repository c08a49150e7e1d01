package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staydash/internal/service/stats"
)

// chartDisabled 可选列缺失时图表降级为提示信息，其余功能不受影响
func chartDisabled(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"disabled": true,
		"message":  message,
	})
}

// GetPriceHistogram 价格分布直方图（99 分位截断，50 箱）
// GET /api/charts/price-histogram
func (h *Handler) GetPriceHistogram(c *gin.Context) {
	hist, err := stats.BuildPriceHistogram(h.store.Listings(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "计算价格分布失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disabled":  false,
		"histogram": hist,
	})
}

// GetRoomTypeAvgPrice 各房型平均价
// GET /api/charts/room-type-avg-price
func (h *Handler) GetRoomTypeAvgPrice(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil || !meta.HasRoomType {
		chartDisabled(c, "未找到 room_type 列，已跳过房型图表")
		return
	}

	items, err := stats.AvgPriceByRoomType(h.store.Listings())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "计算房型均价失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disabled": false,
		"items":    items,
	})
}

// GetRoomTypeShare 各房型房源占比
// GET /api/charts/room-type-share
func (h *Handler) GetRoomTypeShare(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil || !meta.HasRoomType {
		chartDisabled(c, "未找到 room_type 列，已跳过房型图表")
		return
	}

	items, err := stats.RoomTypeShare(h.store.Listings())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "计算房型占比失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disabled": false,
		"items":    items,
	})
}

// GetTopCities 平均价最高的 10 个城市
// GET /api/charts/top-cities
func (h *Handler) GetTopCities(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil || !meta.HasCity {
		chartDisabled(c, "未找到 city 列，已跳过城市图表")
		return
	}

	items, err := stats.TopCitiesByAvgPrice(h.store.Listings(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "计算城市均价失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disabled": false,
		"items":    items,
	})
}
