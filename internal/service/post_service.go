package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"proconnect/internal/config"
	"proconnect/internal/models"
	"proconnect/internal/repository"
	"proconnect/internal/storage"
)

type PostService interface {
	// CreatePost сохраняет медиа (если передано) и создаёт пост.
	// file == nil означает пост без вложения
	CreatePost(ctx context.Context, userID, body string, file io.Reader, fileName, contentType string, size int64) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.PostWithAuthor, error)
	DeletePost(ctx context.Context, postID, userID string) error
	CommentOnPost(ctx context.Context, postID, userID, body string) (*models.Comment, error)
	GetCommentsForPost(ctx context.Context, postID string) ([]models.CommentWithAuthor, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
	IncrementLikes(ctx context.Context, postID string) (int, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, userID, body string, file io.Reader, fileName, contentType string, size int64) (*models.Post, error) {
	post := &models.Post{
		UserID: userID,
		Body:   body,
	}

	if file != nil {
		objectName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), fileName)
		if err := p.storage.Save(ctx, objectName, file, size, contentType); err != nil {
			return nil, fmt.Errorf("ошибка сохранения медиа: %w", err)
		}
		post.Media = objectName
		post.FileType = contentType
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts, err := p.postRepo.GetAllWithAuthor(ctx)
	if err != nil {
		return nil, err
	}

	// Количество комментариев считается отдельным запросом на каждый пост.
	// На текущем объёме данных это приемлемо
	for i := range posts {
		count, err := p.commentRepo.CountByPostID(ctx, posts[i].PostID)
		if err != nil {
			return nil, err
		}
		posts[i].CommentsCount = count
	}

	return posts, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, userID string) error {
	return p.postRepo.DeleteOwned(ctx, postID, userID)
}

func (p *postService) CommentOnPost(ctx context.Context, postID, userID, body string) (*models.Comment, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: post.PostID,
		UserID: userID,
		Body:   body,
	}

	if err := p.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (p *postService) GetCommentsForPost(ctx context.Context, postID string) ([]models.CommentWithAuthor, error) {
	return p.commentRepo.GetByPostWithAuthor(ctx, postID)
}

func (p *postService) DeleteComment(ctx context.Context, commentID, userID string) error {
	return p.commentRepo.DeleteOwned(ctx, commentID, userID)
}

func (p *postService) IncrementLikes(ctx context.Context, postID string) (int, error) {
	return p.postRepo.IncrementLikes(ctx, postID)
}
