package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"proconnect/internal/config"
	handlers "proconnect/internal/handler"
	"proconnect/internal/models"
	"proconnect/internal/service"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService:       &MockAuthService{},
		UserService:       &MockUserService{},
		ConnectionService: &MockConnectionService{},
		PostService:       &MockPostService{},
		ExportService:     &MockExportService{},
		Cfg:               cfg,
		Validate:          validator.New(),
	}
}

// withUser кладёт пользователя в контекст запроса так же, как это
// делает auth-middleware
func withUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), "user", user)
	ctx = context.WithValue(ctx, "userID", user.UserID)
	return r.WithContext(ctx)
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], expectedMessage)
}

// assertJSONSuccess checks the successful JSON response
func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestNewHandlers(t *testing.T) {
	// create mock object
	cfg := &config.Config{}

	services := &service.Service{
		Auth:       &MockAuthService{},
		User:       &MockUserService{},
		Connection: &MockConnectionService{},
		Post:       &MockPostService{},
		Export:     &MockExportService{},
	}

	handler := handlers.NewHandlers(services, nil, nil, cfg)

	assert.NotNil(t, handler.AuthService)
	assert.NotNil(t, handler.UserService)
	assert.NotNil(t, handler.ConnectionService)
	assert.NotNil(t, handler.PostService)
	assert.NotNil(t, handler.ExportService)
	assert.NotNil(t, handler.Cfg)
	assert.NotNil(t, handler.Validate)
}

// go test ./internal/handler/test... -v
