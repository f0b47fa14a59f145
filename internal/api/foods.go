package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/middleware"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/types"
)

// FoodHandler serves the food catalog.
type FoodHandler struct {
	catalog     *service.CatalogService
	rateLimiter *middleware.RateLimiter
}

// NewFoodHandler creates a new FoodHandler. rateLimiter may be nil; the
// lookup endpoint then runs unthrottled.
func NewFoodHandler(catalog *service.CatalogService, rateLimiter *middleware.RateLimiter) *FoodHandler {
	return &FoodHandler{
		catalog:     catalog,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers the catalog routes
func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/search", h.SearchFoods)
		foods.GET("/:id", h.GetFood)
		foods.POST("", h.CreateFood)
		if h.rateLimiter != nil {
			foods.POST("/lookup", h.rateLimiter.RateLimitMiddleware(), h.LookupFood)
		} else {
			foods.POST("/lookup", h.LookupFood)
		}
	}
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	items, err := h.catalog.ListFoodItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": items})
}

func (h *FoodHandler) SearchFoods(c *gin.Context) {
	items, err := h.catalog.SearchFoodItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": items})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.catalog.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var req types.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item := models.FoodItem{
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		ServingSize: req.ServingSize,
		Region:      req.Region,
		Category:    req.Category,
	}
	if err := h.catalog.AddFoodItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *FoodHandler) LookupFood(c *gin.Context) {
	var req types.LookupFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.catalog.ResolveFood(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
