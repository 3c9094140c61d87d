package controllers

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GET /api/analytics/dashboard
func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	stats, err := ac.analytics.Dashboard()
	if err != nil {
		respondError(c, err, "not found")
		return
	}
	resp.OK(c, stats)
}

// GET /api/analytics/trends?period=week|month|quarter|year
func (ac *AnalyticsController) Trends(c *gin.Context) {
	trends, err := ac.analytics.Trends(c.Query("period"))
	if err != nil {
		respondError(c, err, "not found")
		return
	}
	resp.OK(c, trends)
}

// GET /api/analytics/categories
func (ac *AnalyticsController) Categories(c *gin.Context) {
	buckets, err := ac.analytics.Categories()
	if err != nil {
		respondError(c, err, "not found")
		return
	}
	resp.OK(c, buckets)
}

// GET /api/analytics/hostels
func (ac *AnalyticsController) Hostels(c *gin.Context) {
	stats, err := ac.analytics.Hostels()
	if err != nil {
		respondError(c, err, "not found")
		return
	}
	resp.OK(c, stats)
}
