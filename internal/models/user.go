package models

import (
	"time"
)

// ActivityLevel describes how active a user is day to day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "Sedentary"
	ActivityLight      ActivityLevel = "Light"
	ActivityModerate   ActivityLevel = "Moderate"
	ActivityActive     ActivityLevel = "Active"
	ActivityVeryActive ActivityLevel = "Very Active"
)

// Goal is the user's weight goal.
type Goal string

const (
	GoalLoseWeight Goal = "Lose Weight"
	GoalMaintain   Goal = "Maintain"
	GoalGainWeight Goal = "Gain Weight"
)

// User is an account row plus its profile fields. The profile part is filled
// with defaults at registration and edited in place afterwards.
type User struct {
	ID                 uint          `gorm:"primarykey" json:"id"`
	Email              string        `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string        `gorm:"not null" json:"-"`
	Name               string        `gorm:"size:100" json:"name"`
	Age                int           `json:"age"`
	Gender             string        `gorm:"size:20" json:"gender"`
	HeightCm           float64       `json:"height_cm"`
	WeightKg           float64       `json:"weight_kg"`
	ActivityLevel      ActivityLevel `gorm:"size:20" json:"activity_level"`
	Goal               Goal          `gorm:"size:20" json:"goal"`
	DailyCalorieTarget int           `json:"daily_calorie_target"`
	ProfileImage       string        `gorm:"size:255" json:"profile_image"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Valid reports whether the activity level is one of the known values.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Valid reports whether the goal is one of the known values.
func (g Goal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalMaintain, GoalGainWeight:
		return true
	}
	return false
}
