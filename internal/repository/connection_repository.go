package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"proconnect/internal/models"
)

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, request *models.ConnectionRequest) error {
	if request.RequestID == "" {
		request.RequestID = uuid.New().String()
	}
	request.CreatedAt = time.Now()

	// status_accepted остаётся NULL - заявка создаётся в состоянии pending
	query := `
		INSERT INTO connection_requests (request_id, user_id, connection_id, status_accepted, created_at)
		VALUES (:request_id, :user_id, :connection_id, :status_accepted, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, request)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrDuplicate
		}
		return fmt.Errorf("ошибка при создании заявки: %w", err)
	}

	return nil
}

func (r *connectionRepository) Exists(ctx context.Context, userID, connectionID string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM connection_requests
		WHERE user_id = $1 AND connection_id = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, connectionID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке заявки: %w", err)
	}

	return count > 0, nil
}

func (r *connectionRepository) GetByID(ctx context.Context, requestID string) (*models.ConnectionRequest, error) {
	var request models.ConnectionRequest

	query := `SELECT * FROM connection_requests WHERE request_id = $1`

	err := r.db.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении заявки: %w", err)
	}

	return &request, nil
}

func (r *connectionRepository) GetIncomingPending(ctx context.Context, userID string) ([]models.ConnectionRequestWithUser, error) {
	query := `
		SELECT
			cr.request_id, cr.user_id, cr.connection_id, cr.status_accepted, cr.created_at,
			u.user_id AS "requester.user_id",
			u.name AS "requester.name",
			u.username AS "requester.username",
			u.email AS "requester.email",
			u.profile_picture AS "requester.profile_picture"
		FROM connection_requests cr
		JOIN users u ON u.user_id = cr.user_id
		WHERE cr.connection_id = $1 AND cr.status_accepted IS NULL
		ORDER BY cr.created_at DESC
	`

	var requests []models.ConnectionRequestWithUser
	err := r.db.SelectContext(ctx, &requests, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении входящих заявок: %w", err)
	}

	return requests, nil
}

type connectionRow struct {
	RequestID   string            `db:"request_id"`
	ConnectedAt time.Time         `db:"connected_at"`
	User        models.PublicUser `db:"user"`
}

func (r *connectionRepository) GetAcceptedFor(ctx context.Context, userID string) ([]models.Connection, error) {
	// Одно ребро возвращается ровно один раз: присоединяется всегда
	// "другая сторона" относительно вызывающего
	query := `
		SELECT
			cr.request_id, cr.created_at AS connected_at,
			u.user_id AS "user.user_id",
			u.name AS "user.name",
			u.username AS "user.username",
			u.email AS "user.email",
			u.profile_picture AS "user.profile_picture"
		FROM connection_requests cr
		JOIN users u ON u.user_id = CASE
			WHEN cr.user_id = $1 THEN cr.connection_id
			ELSE cr.user_id
		END
		WHERE (cr.user_id = $1 OR cr.connection_id = $1)
		  AND cr.status_accepted = TRUE
		ORDER BY cr.created_at DESC
	`

	var rows []connectionRow
	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении связей: %w", err)
	}

	connections := make([]models.Connection, 0, len(rows))
	for _, row := range rows {
		connections = append(connections, models.Connection{
			RequestID:   row.RequestID,
			User:        row.User,
			ConnectedAt: row.ConnectedAt,
		})
	}

	return connections, nil
}

func (r *connectionRepository) SetStatus(ctx context.Context, requestID string, accepted bool) error {
	query := `UPDATE connection_requests SET status_accepted = $1 WHERE request_id = $2`

	result, err := r.db.ExecContext(ctx, query, accepted, requestID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении заявки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
