package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type pricingView struct {
	WeekendMultiplier  float64 `json:"weekendMultiplier"`
	SummerMultiplier   float64 `json:"summerMultiplier"`
	DecemberMultiplier float64 `json:"decemberMultiplier"`
}

type configResponse struct {
	DataFile string      `json:"dataFile"`
	Pricing  pricingView `json:"pricing"`
}

// GetConfig 获取当前生效的配置（只读视图）
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, configResponse{
		DataFile: h.cfg.Data.File,
		Pricing: pricingView{
			WeekendMultiplier:  h.cfg.Pricing.WeekendMultiplier,
			SummerMultiplier:   h.cfg.Pricing.SummerMultiplier,
			DecemberMultiplier: h.cfg.Pricing.DecemberMultiplier,
		},
	})
}
