package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/middleware"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/nutrition"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/types"
)

const maxImageBytes = 5 << 20

// ProfileHandler serves the user profile and its picture.
type ProfileHandler struct {
	profiles *service.ProfileService
	images   *service.ImageService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles *service.ProfileService, images *service.ImageService) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		images:   images,
	}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/target", h.EstimateTarget)
		profile.POST("/image", h.UploadImage)
	}
}

// profileJSON decorates the stored profile with the derived fields the
// profile screen shows.
func (h *ProfileHandler) profileJSON(user *models.User) gin.H {
	bmi := nutrition.ComputeBMI(user.HeightCm, user.WeightKg)
	return gin.H{
		"user":         user,
		"bmi":          bmi,
		"bmi_category": nutrition.ClassifyBMI(bmi),
		"image_url":    h.images.Resolve(user.ProfileImage),
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.profileJSON(user))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	upd := service.ProfileUpdate{
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		DailyTarget: req.DailyTarget,
	}
	if req.ActivityLevel != nil {
		lvl := models.ActivityLevel(*req.ActivityLevel)
		upd.ActivityLevel = &lvl
	}
	if req.Goal != nil {
		goal := models.Goal(*req.Goal)
		upd.Goal = &goal
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.profileJSON(user))
}

func (h *ProfileHandler) EstimateTarget(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	var req types.EstimateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	target, err := h.profiles.EstimateCalorieTarget(c.Request.Context(), userID, req.Apply)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"target":  target,
		"applied": req.Apply,
	})
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	ref, err := h.images.Store(c.Request.Context(), data, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{ProfileImage: &ref})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"image_url": h.images.Resolve(ref),
		"user":      user,
	})
}
