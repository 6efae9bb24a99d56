package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"proconnect/internal/repository"
	"proconnect/internal/service"
)

type SendConnectionRequest struct {
	ConnectionID string `json:"connectionId" validate:"required"`
}

type RespondConnectionRequest struct {
	RequestID  string `json:"requestId" validate:"required"`
	ActionType string `json:"action_type" validate:"required"`
}

func (h *Handlers) SendConnectionRequestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SendConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "connectionId is required", http.StatusBadRequest)
		return
	}

	_, err := h.ConnectionService.SendRequest(r.Context(), user.UserID, req.ConnectionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfConnection):
			WriteError(w, "You cannot send connection request to yourself", http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "User to connect not found", http.StatusNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			WriteError(w, "Connection request already sent", http.StatusBadRequest)
		default:
			WriteServerError(w, "send connection request handler", err)
		}
		return
	}

	WriteSuccess(w, map[string]string{"message": "Connection request sent successfully"}, http.StatusOK)
}

func (h *Handlers) GetMyConnectionRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	requests, err := h.ConnectionService.GetIncomingRequests(r.Context(), user.UserID)
	if err != nil {
		WriteServerError(w, "get connection requests handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"requests": requests}, http.StatusOK)
}

func (h *Handlers) MyConnections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	connections, err := h.ConnectionService.GetConnections(r.Context(), user.UserID)
	if err != nil {
		WriteServerError(w, "my connections handler", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"connections": connections}, http.StatusOK)
}

func (h *Handlers) RespondToConnectionRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req RespondConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.ConnectionService.RespondToRequest(r.Context(), user.UserID, req.RequestID, req.ActionType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			WriteError(w, "Invalid action type", http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Connection request not found", http.StatusNotFound)
		default:
			WriteServerError(w, "respond to connection request handler", err)
		}
		return
	}

	WriteSuccess(w, map[string]string{"message": "Connection request updated successfully"}, http.StatusOK)
}
