package services

import (
	"testing"
	"time"

	"github.com/Ferrokwastaken/story-app-api/internal/config"
	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	})
}

func TestModeratorLoginIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := seedUser(t, db, "mod@example.com", "secret123", models.RoleModerator)

	resp, err := svc.ModeratorLogin(&dto.LoginRequest{
		Email:    "mod@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.Name, resp.Name)
	assert.Equal(t, "Login successful!", resp.Message)
	require.NotEmpty(t, resp.Token)

	// The token is a valid HS256 JWT carrying the user's identity.
	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, models.RoleModerator, claims["role"])

	// Its jti is recorded hashed for revocation checks.
	var record models.AccessToken
	require.NoError(t, db.First(&record, "user_id = ?", user.ID).Error)
	assert.Equal(t, models.HashToken(claims["jti"].(string)), record.TokenHash)
	assert.False(t, record.Revoked)
}

func TestModeratorLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	seedUser(t, db, "mod@example.com", "secret123", models.RoleModerator)

	_, err := svc.ModeratorLogin(&dto.LoginRequest{
		Email:    "mod@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestModeratorLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.ModeratorLogin(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestModeratorLoginRefusesRegularUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := seedUser(t, db, "user@example.com", "secret123", models.RoleUser)

	// Correct credentials, wrong role: refused before any token is issued.
	_, err := svc.ModeratorLogin(&dto.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrNotModerator)

	var tokens int64
	require.NoError(t, db.Model(&models.AccessToken{}).
		Where("user_id = ?", user.ID).Count(&tokens).Error)
	assert.Zero(t, tokens)
}

func TestModeratorLoginAcceptsAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	seedUser(t, db, "admin@example.com", "secret123", models.RoleAdmin)

	resp, err := svc.ModeratorLogin(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := seedUser(t, db, "mod@example.com", "secret123", models.RoleModerator)

	_, err := svc.ModeratorLogin(&dto.LoginRequest{
		Email:    "mod@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	var record models.AccessToken
	require.NoError(t, db.First(&record, "user_id = ?", user.ID).Error)

	require.NoError(t, svc.Logout(&record))

	require.NoError(t, db.First(&record, "id = ?", record.ID).Error)
	assert.True(t, record.Revoked)
}
