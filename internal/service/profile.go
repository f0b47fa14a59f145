package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/nutrition"
)

// ProfileService reads and edits the per-user profile fields that drive
// calorie target and BMI calculations.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileUpdate carries partial profile edits; nil fields stay unchanged.
type ProfileUpdate struct {
	Name          *string
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *models.ActivityLevel
	Goal          *models.Goal
	DailyTarget   *int
	ProfileImage  *string
}

// GetProfile loads the user's profile. Rows written before a field existed
// read back with defaults filled in.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user.ActivityLevel == "" {
		user.ActivityLevel = models.ActivitySedentary
	}
	if user.Goal == "" {
		user.Goal = models.GoalMaintain
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the updated
// profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	if upd.Age != nil && *upd.Age < 0 {
		return nil, invalidInput("age cannot be negative")
	}
	if upd.HeightCm != nil && *upd.HeightCm < 0 {
		return nil, invalidInput("height cannot be negative")
	}
	if upd.WeightKg != nil && *upd.WeightKg < 0 {
		return nil, invalidInput("weight cannot be negative")
	}
	if upd.ActivityLevel != nil && !upd.ActivityLevel.Valid() {
		return nil, invalidInput("unknown activity level %q", *upd.ActivityLevel)
	}
	if upd.Goal != nil && !upd.Goal.Valid() {
		return nil, invalidInput("unknown goal %q", *upd.Goal)
	}
	if upd.DailyTarget != nil && *upd.DailyTarget < 0 {
		return nil, invalidInput("calorie target cannot be negative")
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.HeightCm != nil {
		user.HeightCm = *upd.HeightCm
	}
	if upd.WeightKg != nil {
		user.WeightKg = *upd.WeightKg
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
	}
	if upd.Goal != nil {
		user.Goal = *upd.Goal
	}
	if upd.DailyTarget != nil {
		user.DailyCalorieTarget = *upd.DailyTarget
	}
	if upd.ProfileImage != nil {
		user.ProfileImage = *upd.ProfileImage
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// EstimateCalorieTarget computes a daily calorie target from the stored
// profile. With apply set, the estimate is persisted as the user's target.
func (s *ProfileService) EstimateCalorieTarget(ctx context.Context, userID uint, apply bool) (int, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.Age <= 0 || user.HeightCm <= 0 || user.WeightKg <= 0 {
		return 0, invalidInput("age, height and weight must be set to estimate a calorie target")
	}

	target := nutrition.EstimateDailyCalorieTarget(*user)
	if apply {
		if err := s.db.Model(user).Update("daily_calorie_target", target).Error; err != nil {
			return 0, fmt.Errorf("failed to save calorie target: %w", err)
		}
	}
	return target, nil
}
