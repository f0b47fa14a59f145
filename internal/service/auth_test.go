package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(setupTestDB(t), testSecret)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, "Asha@Example.com", "supersecret", "Asha")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, models.ActivitySedentary, user.ActivityLevel)
	assert.Equal(t, models.GoalMaintain, user.Goal)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	loginToken, loginUser, err := svc.Login(ctx, "asha@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(setupTestDB(t), testSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "not-an-email", "supersecret", "X")
	assert.True(t, IsInvalidInput(err))

	_, _, err = svc.Register(ctx, "ok@example.com", "short", "X")
	assert.True(t, IsInvalidInput(err))

	_, _, err = svc.Register(ctx, "dup@example.com", "supersecret", "First")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "DUP@example.com", "supersecret", "Second")
	assert.True(t, IsInvalidInput(err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(setupTestDB(t), testSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "asha@example.com", "supersecret", "Asha")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordIsHashed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	_, user, err := svc.Register(context.Background(), "asha@example.com", "supersecret", "Asha")
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestValidateTokenRejectsForgery(t *testing.T) {
	svc := NewAuthService(setupTestDB(t), testSecret)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenRejectsMissingUserID(t *testing.T) {
	svc := NewAuthService(setupTestDB(t), testSecret)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}
