package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse - стандартный ответ с ошибкой: тело всегда содержит
// как минимум поле message
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServerError логирует причину и отдаёт наружу только общий ответ
func WriteServerError(w http.ResponseWriter, context string, err error) {
	log.Printf("Ошибка в %s: %v", context, err)
	WriteError(w, "Server error", http.StatusInternalServerError)
}
