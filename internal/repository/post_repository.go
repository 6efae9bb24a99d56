package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"proconnect/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (post_id, user_id, body, media, file_type, likes, created_at)
		VALUES (:post_id, :user_id, :body, :media, :file_type, :likes, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetAllWithAuthor(ctx context.Context) ([]models.PostWithAuthor, error) {
	query := `
		SELECT
			p.post_id, p.user_id, p.body, p.media, p.file_type, p.likes, p.created_at,
			u.user_id AS "author.user_id",
			u.name AS "author.name",
			u.username AS "author.username",
			u.email AS "author.email",
			u.profile_picture AS "author.profile_picture"
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at DESC
	`

	var posts []models.PostWithAuthor
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) DeleteOwned(ctx context.Context, postID, userID string) error {
	// Удаление ограничено владельцем. "Не найдено" и "не ваш пост"
	// намеренно неразличимы для вызывающего
	query := `DELETE FROM posts WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
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

func (r *postRepository) IncrementLikes(ctx context.Context, postID string) (int, error) {
	// Инкремент выполняется на стороне БД, чтобы параллельные лайки
	// не теряли друг друга
	query := `UPDATE posts SET likes = likes + 1 WHERE post_id = $1 RETURNING likes`

	var likes int
	err := r.db.GetContext(ctx, &likes, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("ошибка при инкременте лайков: %w", err)
	}

	return likes, nil
}
