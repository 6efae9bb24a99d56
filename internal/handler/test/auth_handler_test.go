package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"proconnect/internal/models"
	"proconnect/internal/repository"
)

func TestRegisterHandler_Success(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"name":     "Test User",
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}

	// Setting up mock
	mockAuthService.On("Register", mock.Anything, repository.CreateUserRequest{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}).Return(&models.User{
		UserID:   "user-123",
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
	}, nil)

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusCreated)
	assert.Equal(t, "User registered successfully", response["message"])
	mockAuthService.AssertExpectations(t)
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	// без password валидация не проходит
	body := `{"name": "Test User", "username": "testuser", "email": "test@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "All fields are required")
	mockAuthService.AssertNotCalled(t, "Register")
}

func TestRegisterHandler_InvalidEmail(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	body := `{"name": "Test User", "username": "testuser", "email": "not-an-email", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "All fields are required")
	mockAuthService.AssertNotCalled(t, "Register")
}

func TestRegisterHandler_DuplicateUser(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	mockAuthService.On("Register", mock.Anything, mock.Anything).
		Return(nil, repository.ErrDuplicate)

	body := `{"name": "Test User", "username": "testuser", "email": "test@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "User already exists")
}

func TestRegisterHandler_MethodNotAllowed(t *testing.T) {
	handler := createTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/user/register", nil)
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusMethodNotAllowed, "Method not allowed")
}

func TestLoginHandler_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	mockAuthService.On("Login", mock.Anything, "test@example.com", "password123").
		Return(&models.User{
			UserID: "user-123",
			Email:  "test@example.com",
		}, "fresh-opaque-token", nil)

	body := `{"email": "test@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "Login successful", response["message"])
	assert.Equal(t, "fresh-opaque-token", response["token"])
	mockAuthService.AssertExpectations(t)
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	mockAuthService.On("Login", mock.Anything, "missing@example.com", "password123").
		Return(nil, "", repository.ErrNotFound)

	body := `{"email": "missing@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "User does not exists")
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	mockAuthService.On("Login", mock.Anything, "test@example.com", "wrong").
		Return(nil, "", repository.ErrInvalidPassword)

	body := `{"email": "test@example.com", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Invalid credentials")
}

func TestLoginHandler_MissingFields(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	body := `{"email": "test@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "All fields are required")
	mockAuthService.AssertNotCalled(t, "Login")
}
