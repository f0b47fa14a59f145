package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/middleware"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/nutrition"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
)

// SummaryHandler serves the aggregated daily view the home screen renders.
type SummaryHandler struct {
	logs     *service.LogService
	profiles *service.ProfileService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(logs *service.LogService, profiles *service.ProfileService) *SummaryHandler {
	return &SummaryHandler{
		logs:     logs,
		profiles: profiles,
	}
}

// RegisterRoutes registers the summary routes
func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	summary := router.Group("/summary")
	{
		summary.GET("/daily", h.DailySummary)
	}
}

func (h *SummaryHandler) DailySummary(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	date := queryDate(c)

	entries, err := h.logs.FoodLogsByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	waterEntries, err := h.logs.WaterLogsByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	waterMl := 0
	for _, w := range waterEntries {
		waterMl += w.AmountMl
	}

	totals := nutrition.SummarizeDay(entries)

	target := 0
	if user, err := h.profiles.GetProfile(c.Request.Context(), userID); err == nil {
		target = user.DailyCalorieTarget
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           date,
		"totals":         totals,
		"meals":          nutrition.GroupByMealType(entries),
		"water_ml":       waterMl,
		"calorie_target": target,
		"goal_progress":  nutrition.GoalProgress(totals.TotalCalories, target),
	})
}
