package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/middleware"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/types"
)

const dateLayout = "2006-01-02"

// LogHandler serves food and water log entries.
type LogHandler struct {
	logs *service.LogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logs *service.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

// RegisterRoutes registers the log routes
func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("/food", h.ListFoodLogs)
		logs.POST("/food", h.CreateFoodLog)
		logs.DELETE("/food/:id", h.DeleteFoodLog)
		logs.GET("/water", h.ListWaterLogs)
		logs.POST("/water", h.CreateWaterLog)
		logs.DELETE("/water/:id", h.DeleteWaterLog)
		logs.GET("/water/weekly", h.WeeklyWater)
	}
}

// queryDate returns the date query parameter, defaulting to today.
func queryDate(c *gin.Context) string {
	if date := c.Query("date"); date != "" {
		return date
	}
	return time.Now().Format(dateLayout)
}

func (h *LogHandler) ListFoodLogs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	entries, err := h.logs.FoodLogsByDate(c.Request.Context(), userID, queryDate(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

func (h *LogHandler) CreateFoodLog(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	var req types.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.logs.AddFoodLog(c.Request.Context(), userID, req.FoodID, req.Date, models.MealType(req.MealType), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) DeleteFoodLog(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.logs.DeleteFoodLog(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "log entry deleted"})
}

func (h *LogHandler) ListWaterLogs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	entries, err := h.logs.WaterLogsByDate(c.Request.Context(), userID, queryDate(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

func (h *LogHandler) CreateWaterLog(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	var req types.CreateWaterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.logs.AddWaterLog(c.Request.Context(), userID, req.AmountMl, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) DeleteWaterLog(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.logs.DeleteWaterLog(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "log entry deleted"})
}

// WeeklyWater returns one total per day for the week starting at ?start=,
// or the week ending today when the parameter is absent.
func (h *LogHandler) WeeklyWater(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	start := c.Query("start")
	var first time.Time
	if start == "" {
		first = time.Now().AddDate(0, 0, -6)
	} else {
		var err error
		first, err = time.Parse(dateLayout, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be in YYYY-MM-DD form"})
			return
		}
	}

	dates := make([]string, 7)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i).Format(dateLayout)
	}

	totals, err := h.logs.WeeklyWaterTotals(c.Request.Context(), userID, dates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dates":  dates,
		"totals": totals,
	})
}
