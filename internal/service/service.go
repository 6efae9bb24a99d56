package service

import (
	"errors"

	"proconnect/internal/config"
	"proconnect/internal/repository"
	"proconnect/internal/storage"
)

// Ошибки уровня бизнес-логики, различаемые handler'ами
var (
	ErrSelfConnection = errors.New("нельзя отправить заявку самому себе")
	ErrInvalidAction  = errors.New("недопустимое действие над заявкой")
)

type Service struct {
	Auth       AuthService
	User       UserService
	Connection ConnectionService
	Post       PostService
	Export     ExportService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:       NewAuthService(rep.User),
		User:       NewUserService(rep.User, rep.Profile, storage, cfg),
		Connection: NewConnectionService(rep.Connection, rep.User),
		Post:       NewPostService(rep.Post, rep.Comment, storage, cfg),
		Export:     NewExportService(rep.Profile, storage),
	}
}
