package service

import (
	"context"

	"proconnect/internal/models"
	"proconnect/internal/repository"
)

// ConnectionService - жизненный цикл заявок на соединение.
// Машина состояний: pending -> {accepted, rejected}, разрешённая заявка
// терминальна и обратно в pending не возвращается.
type ConnectionService interface {
	SendRequest(ctx context.Context, userID, connectionID string) (*models.ConnectionRequest, error)
	GetIncomingRequests(ctx context.Context, userID string) ([]models.ConnectionRequestWithUser, error)
	GetConnections(ctx context.Context, userID string) ([]models.Connection, error)
	RespondToRequest(ctx context.Context, actorID, requestID, actionType string) error
}

type connectionService struct {
	connectionRepo repository.ConnectionRepository
	userRepo       repository.UserRepository
}

func NewConnectionService(connectionRepo repository.ConnectionRepository, userRepo repository.UserRepository) ConnectionService {
	return &connectionService{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
	}
}

func (s *connectionService) SendRequest(ctx context.Context, userID, connectionID string) (*models.ConnectionRequest, error) {
	if userID == connectionID {
		return nil, ErrSelfConnection
	}

	// адресат должен существовать
	if _, err := s.userRepo.GetUserByID(ctx, connectionID); err != nil {
		return nil, err
	}

	// повторная заявка по той же упорядоченной паре блокируется независимо
	// от статуса существующей: отклонённая заявка тоже не пересылается
	exists, err := s.connectionRepo.Exists(ctx, userID, connectionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicate
	}

	request := &models.ConnectionRequest{
		UserID:       userID,
		ConnectionID: connectionID,
	}

	if err := s.connectionRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (s *connectionService) GetIncomingRequests(ctx context.Context, userID string) ([]models.ConnectionRequestWithUser, error) {
	return s.connectionRepo.GetIncomingPending(ctx, userID)
}

func (s *connectionService) GetConnections(ctx context.Context, userID string) ([]models.Connection, error) {
	return s.connectionRepo.GetAcceptedFor(ctx, userID)
}

func (s *connectionService) RespondToRequest(ctx context.Context, actorID, requestID, actionType string) error {
	if actionType != "accept" && actionType != "reject" {
		return ErrInvalidAction
	}

	request, err := s.connectionRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	// Разрешить заявку может только её адресат. Для постороннего ответ
	// неотличим от несуществующей заявки
	if request.ConnectionID != actorID {
		return repository.ErrNotFound
	}

	// Решение по заявке окончательное: повторный ответ отвечается так же,
	// как несуществующая заявка, потому что в списке входящих её уже нет
	if request.StatusAccepted.Valid {
		return repository.ErrNotFound
	}

	return s.connectionRepo.SetStatus(ctx, requestID, actionType == "accept")
}
