package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tosraider/internal/domain/entity"
	"tosraider/internal/domain/repository"
	"tosraider/pkg/jwt"
	"tosraider/pkg/password"
)

type AuthUsecase struct {
	userRepo  repository.UserRepository
	usageRepo repository.UsageRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	usageRepo repository.UsageRepository,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		usageRepo: usageRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Register creates a profile on the free tier together with its one-to-one
// usage row.
func (uc *AuthUsecase) Register(ctx context.Context, email, pass string) (*entity.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || pass == "" {
		return nil, fmt.Errorf("%w: email and password are required", entity.ErrInvalidInput)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrEmailTaken
	}

	hashed, err := password.HashPassword(pass)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: hashed,
		Role:     entity.RoleFree,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	usage := &entity.APIUsage{
		UserID:     user.ID,
		Plan:       entity.PlanFree,
		CallsToday: 0,
	}
	if err := uc.usageRepo.Create(ctx, usage); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a JWT.
func (uc *AuthUsecase) Login(ctx context.Context, email, pass string) (string, *entity.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || pass == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", entity.ErrInvalidInput)
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, entity.ErrBadCredentials
	}

	if err := password.ComparePassword(user.Password, pass); err != nil {
		return "", nil, entity.ErrBadCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, string(user.Role), uc.jwtSecret, uc.jwtExpiry)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
