package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/types"
)

// ErrInvalidCredentials is returned for any login failure. Login never says
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates an account with profile defaults and returns a session
// token for it.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", nil, invalidInput("a valid email is required")
	}
	if len(password) < 8 {
		return "", nil, invalidInput("password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", nil, invalidInput("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Email:         email,
		PasswordHash:  string(hashed),
		Name:          strings.TrimSpace(name),
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalMaintain,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login checks the credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) generateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a JWT, returning the claims it carries.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		// Numeric claims come back as float64 from the JSON decoder.
		idValue, ok := claims["user_id"].(float64)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return &types.TokenClaims{UserID: uint(idValue)}, nil
	}

	return nil, errors.New("invalid token")
}
