package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"proconnect/internal/repository"
)

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req repository.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.UserService.UpdateUser(r.Context(), user.UserID, req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			WriteError(w, "Username already taken", http.StatusBadRequest)
			return
		}
		WriteServerError(w, "update user handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    updated,
	}, http.StatusOK)
}

func (h *Handlers) UpdateProfileData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req repository.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.UpdateProfile(r.Context(), user.UserID, req)
	if err != nil {
		WriteServerError(w, "update profile handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": profile,
	}, http.StatusOK)
}

func (h *Handlers) GetUserAndProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userData, profile, err := h.UserService.GetUserAndProfile(r.Context(), user.UserID)
	if err != nil {
		WriteServerError(w, "get user and profile handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"user":    userData,
		"profile": profile,
	}, http.StatusOK)
}

func (h *Handlers) GetAllUserProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profiles, err := h.UserService.GetAllProfiles(r.Context())
	if err != nil {
		WriteServerError(w, "get all profiles handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"profiles": profiles}, http.StatusOK)
}

func (h *Handlers) GetUserProfileByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		WriteError(w, "userId is required", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Profile not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, "get profile by id handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"profile": profile}, http.StatusOK)
}

// DownloadProfile генерирует PDF с резюме пользователя и возвращает ссылку
// на скачивание. Отсутствующий профиль отдаётся документом с заглушками,
// а не 404 - унаследованная мягкость экспорта
func (h *Handlers) DownloadProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("id")
	if userID == "" {
		WriteError(w, "id is required", http.StatusBadRequest)
		return
	}

	fileName, err := h.ExportService.ExportProfile(r.Context(), userID)
	if err != nil {
		WriteServerError(w, "download profile handler", err)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	fileURL := scheme + "://" + r.Host + "/uploads/" + fileName

	WriteSuccess(w, map[string]string{
		"url":      fileURL,
		"filename": fileName,
	}, http.StatusOK)
}
