package handlers

import (
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
)

func (h *Handlers) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// форма уже распарсена auth-middleware при извлечении токена,
	// повторный вызов ParseMultipartForm здесь безвреден
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		WriteError(w, "profile_picture file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	objectName, err := h.UserService.UploadProfilePicture(
		r.Context(), user.UserID, header.Filename, file, header.Size, contentType)
	if err != nil {
		WriteServerError(w, "upload profile picture handler", err)
		return
	}

	WriteSuccess(w, map[string]string{
		"message":        "Profile picture uploaded successfully",
		"profilePicture": objectName,
	}, http.StatusOK)
}

// ServeUpload отдаёт сохранённый файл по имени. Работает поверх любого
// storage-бэкенда, поэтому не использует http.FileServer
func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := mux.Vars(r)["name"]
	if name == "" {
		WriteError(w, "File not found", http.StatusNotFound)
		return
	}

	file, err := h.Storage.Open(r.Context(), name)
	if err != nil {
		WriteError(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, file); err != nil {
		// заголовки уже ушли, остаётся только залогировать
		log.Printf("Ошибка при отдаче файла %s: %v", name, err)
	}
}
