// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/gamava/internal/config"
	"github.com/appdotbuilder/gamava/internal/models"
	"github.com/appdotbuilder/gamava/internal/utils"
)

// ErrInvalidCredentials covers unknown email, wrong password and
// deactivated accounts alike, so login failures do not reveal which
// part was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"first_name" validate:"required,min=1"`
	LastName  string  `json:"last_name" validate:"required,min=1"`
	Username  *string `json:"username,omitempty" validate:"omitempty,username"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("email %q: %w", req.Email, ErrConflict)
	}

	if req.Username != nil && *req.Username != "" {
		if err := s.db.Model(&models.User{}).Where("username = ?", *req.Username).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("username %q: %w", *req.Username, ErrConflict)
		}
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
		IsActive:  true,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return s.buildAuthResponse(&user)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
// Deactivated accounts cannot refresh even with a valid token.
func (s *AuthService) RefreshToken(req *RefreshRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	userID, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(&user)
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

func (s *AuthService) buildAuthResponse(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.IsAdmin, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
