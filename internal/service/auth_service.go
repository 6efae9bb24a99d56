package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"proconnect/internal/models"
	"proconnect/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	// Login выдаёт новый непрозрачный токен. Предыдущий токен аккаунта
	// при этом перестаёт действовать - активен всегда ровно один
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// ResolveToken находит пользователя по непрозрачному токену
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	}

	err := s.userRepo.CreateWithProfile(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	err = s.userRepo.UpdateToken(ctx, user.UserID, token)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	user.Token = token
	return user, token, nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	return s.userRepo.GetUserByToken(ctx, token)
}

// generateToken возвращает 16 случайных байт в hex - токен без встроенных
// данных, резолвится только через хранилище
func generateToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
