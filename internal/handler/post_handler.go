package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"proconnect/internal/repository"
)

type CommentRequest struct {
	PostID string `json:"postId" validate:"required"`
	Body   string `json:"body" validate:"required"`
}

func (h *Handlers) ActiveCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	WriteSuccess(w, map[string]string{"message": "API is running"}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	body := r.FormValue("body")

	// медиа опционально: пост без вложения создаётся с пустыми media/fileType
	var file io.Reader
	var fileName, contentType string
	var size int64

	if f, header, err := r.FormFile("media"); err == nil {
		defer f.Close()
		file = f
		fileName = header.Filename
		contentType = header.Header.Get("Content-Type")
		size = header.Size
	}

	post, err := h.PostService.CreatePost(r.Context(), user.UserID, body, file, fileName, contentType, size)
	if err != nil {
		WriteServerError(w, "create post handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Post created successfully",
		"post":    post,
	}, http.StatusCreated)
}

func (h *Handlers) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.PostService.GetAllPosts(r.Context())
	if err != nil {
		WriteServerError(w, "get all posts handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"posts": posts}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		PostID string `json:"postId" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.PostService.DeletePost(r.Context(), req.PostID, user.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// "не существует" и "не ваш пост" дают одинаковый ответ
			WriteError(w, "Post not found or you are not authorized to delete this post", http.StatusNotFound)
			return
		}
		WriteServerError(w, "delete post handler", err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Post deleted successfully"}, http.StatusOK)
}

func (h *Handlers) CommentOnPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.CommentOnPost(r.Context(), req.PostID, user.UserID, req.Body)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, "comment on post handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Comment added successfully",
		"comment": comment,
	}, http.StatusOK)
}

func (h *Handlers) GetCommentsForPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := r.URL.Query().Get("postId")
	if postID == "" {
		WriteError(w, "postId is required", http.StatusBadRequest)
		return
	}

	comments, err := h.PostService.GetCommentsForPost(r.Context(), postID)
	if err != nil {
		WriteServerError(w, "get comments handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"comments": comments}, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		CommentID string `json:"comment_id" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.PostService.DeleteComment(r.Context(), req.CommentID, user.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Comment not found or you are not authorized to delete this comment", http.StatusNotFound)
			return
		}
		WriteServerError(w, "delete comment handler", err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Comment deleted successfully"}, http.StatusOK)
}

func (h *Handlers) IncrementLikes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		PostID string `json:"postId" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	likes, err := h.PostService.IncrementLikes(r.Context(), req.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, "increment likes handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Like incremented",
		"likes":   likes,
	}, http.StatusOK)
}
