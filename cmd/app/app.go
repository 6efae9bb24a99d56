package app

import (
	"log"

	"proconnect/internal/config"
	"proconnect/internal/database"
	"proconnect/internal/repository"
	"proconnect/internal/service"
	"proconnect/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.Storage) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// storage для загрузок: локальный диск или MinIO
	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать хранилище: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services, store
}
