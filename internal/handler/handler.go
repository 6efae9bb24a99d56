package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"proconnect/internal/config"
	"proconnect/internal/database"
	"proconnect/internal/models"
	"proconnect/internal/service"
	"proconnect/internal/storage"
)

type Handlers struct {
	AuthService       service.AuthService
	UserService       service.UserService
	ConnectionService service.ConnectionService
	PostService       service.PostService
	ExportService     service.ExportService
	Storage           storage.Storage
	DB                *database.DB
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(services *service.Service, storage storage.Storage, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:       services.Auth,
		UserService:       services.User,
		ConnectionService: services.Connection,
		PostService:       services.Post,
		ExportService:     services.Export,
		Storage:           storage,
		DB:                db,
		Cfg:               config,
		Validate:          validator.New(),
	}
}

// currentUser достаёт пользователя, положенного в контекст auth-middleware
func currentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value("user").(*models.User)
	return user, ok
}
