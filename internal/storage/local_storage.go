package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// safePath отклоняет имена, выходящие за пределы каталога загрузок
func (s *LocalStorage) safePath(objectName string) (string, error) {
	cleaned := filepath.Clean(objectName)
	if cleaned == "." || strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("недопустимое имя файла: %s", objectName)
	}
	return filepath.Join(s.dir, cleaned), nil
}

func (s *LocalStorage) Save(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) error {
	path, err := s.safePath(objectName)
	if err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка при создании файла: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("ошибка при записи файла: %w", err)
	}

	return nil
}

func (s *LocalStorage) Open(ctx context.Context, objectName string) (io.ReadCloser, error) {
	path, err := s.safePath(objectName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка при открытии файла: %w", err)
	}

	return f, nil
}

func (s *LocalStorage) Delete(ctx context.Context, objectName string) error {
	path, err := s.safePath(objectName)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("ошибка при удалении файла: %w", err)
	}

	return nil
}
