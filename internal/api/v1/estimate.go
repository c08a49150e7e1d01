package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staydash/internal/service/estimator"
	"staydash/internal/util"
)

const dateLayout = "2006-01-02"

type estimateOptionsResponse struct {
	Enabled   bool     `json:"enabled"`
	Message   string   `json:"message,omitempty"`
	Cities    []string `json:"cities"`
	RoomTypes []string `json:"roomTypes"`
}

// GetEstimateOptions 获取估价表单选项（去重排序后的城市与房型）
// GET /api/estimate/options
func (h *Handler) GetEstimateOptions(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "数据集尚未加载"})
		return
	}

	if !meta.HasCity || !meta.HasRoomType {
		c.JSON(http.StatusOK, estimateOptionsResponse{
			Enabled: false,
			Message: "需要 city 与 room_type 列才能使用估价功能",
		})
		return
	}

	c.JSON(http.StatusOK, estimateOptionsResponse{
		Enabled:   true,
		Cities:    h.store.Cities(),
		RoomTypes: h.store.RoomTypes(),
	})
}

type estimateRequest struct {
	City     string `json:"city"`
	RoomType string `json:"roomType"`
	CheckIn  string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut string `json:"checkOut"` // YYYY-MM-DD
}

type estimateResponse struct {
	estimator.Estimate
	FormattedPrice string `json:"formattedPrice"`
	Message        string `json:"message"`
}

// Estimate 按日期估算每晚价格
// POST /api/estimate
func (h *Handler) Estimate(c *gin.Context) {
	meta, err := h.store.Meta()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "数据集尚未加载"})
		return
	}
	if !meta.HasCity || !meta.HasRoomType {
		c.JSON(http.StatusConflict, gin.H{"error": "需要 city 与 room_type 列才能使用估价功能"})
		return
	}

	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "入住日期格式错误，应为 YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "退房日期格式错误，应为 YYYY-MM-DD"})
		return
	}

	// 日期区间校验在估价之前完成，非法区间不会触发计算
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "退房日期必须晚于入住日期"})
		return
	}

	rules := estimator.MultiplierRules{
		Weekend:  h.cfg.Pricing.WeekendMultiplier,
		Summer:   h.cfg.Pricing.SummerMultiplier,
		December: h.cfg.Pricing.DecemberMultiplier,
	}

	est, err := estimator.New(h.store.Listings(), rules).Estimate(req.City, req.RoomType, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, estimator.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "估价失败: " + err.Error()})
		return
	}

	formatted := util.FormatCurrency(est.PricePerNight)
	c.JSON(http.StatusOK, estimateResponse{
		Estimate:       *est,
		FormattedPrice: formatted,
		Message: fmt.Sprintf("预计每晚价格 %s（%s · %s，共 %d 晚）",
			formatted, req.City, req.RoomType, est.Nights),
	})
}
