package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"proconnect/internal/config"
	"proconnect/internal/models"
	"proconnect/internal/repository"
	"proconnect/internal/storage"
)

type UserService interface {
	// UpdateUser обновляет только поля из allow-list'а. Если username в
	// запросе не передан, обновление целиком пропускается - унаследованное
	// поведение, на которое завязаны клиенты
	UpdateUser(ctx context.Context, userID string, req repository.UpdateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req repository.UpdateProfileRequest) (*models.Profile, error)
	// UploadProfilePicture сохраняет файл в хранилище и привязывает его
	// имя к пользователю; возвращает имя сохранённого объекта
	UploadProfilePicture(ctx context.Context, userID, fileName string, file io.Reader, size int64, contentType string) (string, error)
	GetUserAndProfile(ctx context.Context, userID string) (*models.User, *models.ProfileWithUser, error)
	GetAllProfiles(ctx context.Context) ([]models.ProfileWithUser, error)
	GetProfileByUserID(ctx context.Context, userID string) (*models.ProfileWithUser, error)
}

type userService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req repository.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// без username запрос считается no-op
	if req.Username == nil {
		return user, nil
	}

	// username не должен совпадать с username другого аккаунта
	existing, err := s.userRepo.GetUserByUsername(ctx, *req.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.UserID != user.UserID {
		return nil, repository.ErrDuplicate
	}

	user.Username = *req.Username
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req repository.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.CurrentPosition != nil {
		profile.CurrentPosition = *req.CurrentPosition
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.PastWork != nil {
		profile.PastWork = *req.PastWork
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, userID, fileName string, file io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), fileName)

	if err := s.storage.Save(ctx, objectName, file, size, contentType); err != nil {
		return "", fmt.Errorf("ошибка сохранения фото профиля: %w", err)
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, objectName); err != nil {
		return "", err
	}

	return objectName, nil
}

func (s *userService) GetUserAndProfile(ctx context.Context, userID string) (*models.User, *models.ProfileWithUser, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profileRepo.GetByUserIDWithUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, profile, nil
}

func (s *userService) GetAllProfiles(ctx context.Context) ([]models.ProfileWithUser, error) {
	return s.profileRepo.GetAllWithUser(ctx)
}

func (s *userService) GetProfileByUserID(ctx context.Context, userID string) (*models.ProfileWithUser, error) {
	return s.profileRepo.GetByUserIDWithUser(ctx, userID)
}
