package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"proconnect/internal/models"
)

// Сигнальные ошибки для маппинга в HTTP статусы на уровне handler'ов.
// ErrNotFound намеренно используется и для "не найдено", и для "не ваш объект",
// чтобы не раскрывать существование чужих записей.
var (
	ErrNotFound        = errors.New("запись не найдена")
	ErrDuplicate       = errors.New("запись уже существует")
	ErrInvalidPassword = errors.New("неверный пароль")
)

type UserRepository interface {
	// CreateWithProfile создаёт пользователя и пустой профиль в одной транзакции
	CreateWithProfile(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	// UpdateToken перезаписывает единственный активный токен аккаунта:
	// предыдущий токен перестаёт резолвиться сразу после вызова
	UpdateToken(ctx context.Context, userID, token string) error
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateProfilePicture(ctx context.Context, userID, fileName string) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	GetAllWithUser(ctx context.Context) ([]models.ProfileWithUser, error)
	GetByUserIDWithUser(ctx context.Context, userID string) (*models.ProfileWithUser, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAllWithAuthor(ctx context.Context) ([]models.PostWithAuthor, error)
	// DeleteOwned удаляет пост только если он принадлежит userID,
	// иначе возвращает ErrNotFound
	DeleteOwned(ctx context.Context, postID, userID string) error
	// IncrementLikes - атомарный инкремент счётчика на стороне БД
	IncrementLikes(ctx context.Context, postID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostWithAuthor(ctx context.Context, postID string) ([]models.CommentWithAuthor, error)
	DeleteOwned(ctx context.Context, commentID, userID string) error
	CountByPostID(ctx context.Context, postID string) (int, error)
}

type ConnectionRepository interface {
	Create(ctx context.Context, request *models.ConnectionRequest) error
	// Exists проверяет наличие ребра (requester, target) в любом статусе
	Exists(ctx context.Context, userID, connectionID string) (bool, error)
	GetByID(ctx context.Context, requestID string) (*models.ConnectionRequest, error)
	GetIncomingPending(ctx context.Context, userID string) ([]models.ConnectionRequestWithUser, error)
	GetAcceptedFor(ctx context.Context, userID string) ([]models.Connection, error)
	SetStatus(ctx context.Context, requestID string, accepted bool) error
}

type Repository struct {
	User       UserRepository
	Profile    ProfileRepository
	Post       PostRepository
	Comment    CommentRepository
	Connection ConnectionRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Profile:    NewProfileRepository(db),
		Post:       NewPostRepository(db),
		Comment:    NewCommentRepository(db),
		Connection: NewConnectionRepository(db),
	}
}
