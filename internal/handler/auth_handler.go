package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"proconnect/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	_, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			WriteError(w, "User already exists", http.StatusBadRequest)
			return
		}
		WriteServerError(w, "register handler", err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "User registered successfully"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "User does not exists", http.StatusBadRequest)
		case errors.Is(err, repository.ErrInvalidPassword):
			WriteError(w, "Invalid credentials", http.StatusBadRequest)
		default:
			WriteServerError(w, "login handler", err)
		}
		return
	}

	WriteSuccess(w, map[string]string{
		"message": "Login successful",
		"token":   token,
	}, http.StatusOK)
}
