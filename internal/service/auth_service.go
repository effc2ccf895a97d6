package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blogspace/internal/config"
	"blogspace/internal/models"
	"blogspace/internal/repository"
)

type RegisterRequest struct {
	Email    string
	Password string
	FullName string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrEmailTaken
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	user := &models.User{
		Email:                  req.Email,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password, req.FullName); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, refreshToken, refreshTokenExpiry); err != nil {
		return nil, "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, newRefreshToken, refreshTokenExpiry); err != nil {
		return nil, "", "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return user, accessToken, newRefreshToken, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"email":  user.Email,
		"exp":    time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, models.ErrInvalidCredentials
	}

	return token, nil
}
