package storage

import (
	"context"
	"fmt"
	"io"

	"proconnect/internal/config"
)

// Storage - хранилище загруженных файлов (медиа постов, фото профилей,
// сгенерированные PDF). Файлы отдаются наружу через /uploads/<name>.
type Storage interface {
	Save(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) error
	Open(ctx context.Context, objectName string) (io.ReadCloser, error)
	Delete(ctx context.Context, objectName string) error
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "minio":
		return NewMinIOClient(cfg)
	case "local", "":
		return NewLocalStorage(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("неизвестный storage backend: %s", cfg.StorageBackend)
	}
}
