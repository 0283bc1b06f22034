package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ferrokwastaken/story-app-api/internal/config"
	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrNotModerator       = errors.New("user is not a moderator")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// ModeratorLogin exchanges credentials for a bearer token. Valid credentials
// without the moderator or admin role are refused and no token is issued.
func (s *AuthService) ModeratorLogin(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsModerator() {
		return nil, ErrNotModerator
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Name:    user.Name,
		Message: "Login successful!",
	}, nil
}

// Logout revokes the presented token record; the JWT stops resolving on the
// next request even though its signature stays valid until expiry.
func (s *AuthService) Logout(record *models.AccessToken) error {
	return s.db.Model(record).Update("revoked", true).Error
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	jti := uuid.NewString()
	expiresAt := time.Now().Add(s.cfg.JWTExpiry)

	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.Name,
		"role": user.Role,
		"jti":  jti,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	record := models.AccessToken{
		UserID:    user.ID,
		TokenHash: models.HashToken(jti),
		ExpiresAt: expiresAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store access token: %w", err)
	}

	return signed, nil
}
