package handlers

import (
	"net/http"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics domain.AnalyticsUsecase
}

func NewAnalyticsHandler(analytics domain.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

type analyticsResponse struct {
	Daily       *domain.PeriodStats             `json:"daily"`
	Weekly      *domain.PeriodStats             `json:"weekly"`
	Monthly     *domain.PeriodStats             `json:"monthly"`
	YearToDate  *domain.YearToDateStats         `json:"yearToDate"`
	Contractors []*domain.ContractorAttribution `json:"contractors"`
}

// GetAnalytics serves GET /api/admin/analytics: hourly buckets over the last
// day, daily over the last week, weekly over the last 30 days, plus the
// unbounded year-to-date block and contractor attribution.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	now := time.Now().UTC()

	daily, err := h.analytics.ComputePeriodStats(now.Add(-24*time.Hour), now, domain.BucketHour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute analytics"})
		return
	}
	weekly, err := h.analytics.ComputePeriodStats(now.Add(-7*24*time.Hour), now, domain.BucketDay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute analytics"})
		return
	}
	monthly, err := h.analytics.ComputePeriodStats(now.Add(-30*24*time.Hour), now, domain.BucketWeek)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute analytics"})
		return
	}
	yearToDate, err := h.analytics.ComputeYearToDateStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute analytics"})
		return
	}
	contractors, err := h.analytics.ComputeContractorAttribution()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute contractor attribution"})
		return
	}

	c.JSON(http.StatusOK, analyticsResponse{
		Daily:       daily,
		Weekly:      weekly,
		Monthly:     monthly,
		YearToDate:  yearToDate,
		Contractors: contractors,
	})
}
