package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"proconnect/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, post_id, user_id, body, created_at)
		VALUES (:comment_id, :post_id, :user_id, :body, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostWithAuthor(ctx context.Context, postID string) ([]models.CommentWithAuthor, error) {
	query := `
		SELECT
			c.comment_id, c.post_id, c.user_id, c.body, c.created_at,
			u.user_id AS "author.user_id",
			u.name AS "author.name",
			u.username AS "author.username",
			u.email AS "author.email",
			u.profile_picture AS "author.profile_picture"
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
	`

	var comments []models.CommentWithAuthor
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) DeleteOwned(ctx context.Context, commentID, userID string) error {
	// Та же политика, что и для постов: чужой и несуществующий
	// комментарий неотличимы
	query := `DELETE FROM comments WHERE comment_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, commentID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *commentRepository) CountByPostID(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM comments WHERE post_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте комментариев: %w", err)
	}

	return count, nil
}
