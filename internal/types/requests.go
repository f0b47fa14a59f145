package types

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateFoodRequest represents the request body for adding a catalog food
type CreateFoodRequest struct {
	Name        string  `json:"name" binding:"required"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	ServingSize string  `json:"serving_size"`
	Region      string  `json:"region"`
	Category    string  `json:"category"`
}

// LookupFoodRequest represents the request body for a nutrition lookup
type LookupFoodRequest struct {
	Name string `json:"name" binding:"required"`
}

// RecipeIngredientRequest names one ingredient of a recipe
type RecipeIngredientRequest struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

// RecipeRequest represents the request body for creating or updating a recipe
type RecipeRequest struct {
	Name         string                    `json:"name" binding:"required"`
	Description  string                    `json:"description"`
	Instructions string                    `json:"instructions"`
	Servings     int                       `json:"servings" binding:"required"`
	Image        string                    `json:"image"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" binding:"required"`
}

// LogRecipeRequest represents the request body for logging a recipe serving
type LogRecipeRequest struct {
	MealType string `json:"meal_type" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// CreateFoodLogRequest represents the request body for logging a food
type CreateFoodLogRequest struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

// CreateWaterLogRequest represents the request body for logging water intake
type CreateWaterLogRequest struct {
	AmountMl int    `json:"amount_ml" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// UpdateProfileRequest represents the request body for editing the profile.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name          *string  `json:"name,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
	DailyTarget   *int     `json:"daily_calorie_target,omitempty"`
}

// EstimateTargetRequest asks for a calorie target estimate; Apply persists
// it to the profile.
type EstimateTargetRequest struct {
	Apply bool `json:"apply"`
}
