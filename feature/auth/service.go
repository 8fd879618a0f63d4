package auth

import (
	"context"
	"errors"
	"time"

	"products-api/feature/auth/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Sentinel errors surfaced to the handler layer.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
)

// Service handles authentication operations.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	secret   string
	tokenTTL time.Duration
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, logger *zap.Logger, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		db:       db,
		logger:   logger,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user with a hashed password.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    req.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("email", user.Email), zap.String("role", user.Role))
	return &user, nil
}

// Login verifies credentials and issues a signed access token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), truncateForBcrypt(req.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.signToken(&user)
}

// GetByEmail returns the user with the given email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateRole changes the role of the given user.
func (s *Service) UpdateRole(ctx context.Context, userID uint, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	s.logger.Info("User role updated", zap.Uint("user_id", user.ID), zap.String("role", role))
	return &user, nil
}

// signToken issues an HS256 token with subject and role claims.
func (s *Service) signToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncateForBcrypt(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// truncateForBcrypt caps the input at bcrypt's 72-byte limit.
func truncateForBcrypt(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}
