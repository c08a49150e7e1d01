package v1

import (
	"github.com/gin-gonic/gin"

	"staydash/internal/config"
	"staydash/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store     *store.MemoryStore
	cfg       *config.AppConfig
	downloads *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.MemoryStore, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:     store,
		cfg:       cfg,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据概览
	router.GET("/summary", h.GetSummary)

	// 图表数据
	router.GET("/charts/price-histogram", h.GetPriceHistogram)
	router.GET("/charts/room-type-avg-price", h.GetRoomTypeAvgPrice)
	router.GET("/charts/room-type-share", h.GetRoomTypeShare)
	router.GET("/charts/top-cities", h.GetTopCities)

	// 估价
	router.GET("/estimate/options", h.GetEstimateOptions)
	router.POST("/estimate", h.Estimate)

	// 配置查询
	router.GET("/config", h.GetConfig)

	// 报告导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
