package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"proconnect/internal/models"
	"proconnect/internal/repository"
	"proconnect/internal/storage"
)

type ExportService interface {
	// ExportProfile рендерит профиль пользователя в PDF, кладёт его в
	// хранилище и возвращает сгенерированное имя файла
	ExportProfile(ctx context.Context, userID string) (string, error)
}

type exportService struct {
	profileRepo repository.ProfileRepository
	storage     storage.Storage
}

func NewExportService(profileRepo repository.ProfileRepository, storage storage.Storage) ExportService {
	return &exportService{
		profileRepo: profileRepo,
		storage:     storage,
	}
}

func (s *exportService) ExportProfile(ctx context.Context, userID string) (string, error) {
	profile, err := s.profileRepo.GetByUserIDWithUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return "", err
		}
		// отсутствующий профиль рендерится документом из заглушек "N/A",
		// а не ошибкой - унаследованное мягкое поведение экспорта
		profile = &models.ProfileWithUser{}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	s.renderProfileImage(ctx, pdf, profile.User.ProfilePicture)

	pdf.SetFont("Helvetica", "", 14)
	writeLine(pdf, 14, "", fmt.Sprintf("Name: %s", orNA(profile.User.Name)))
	writeLine(pdf, 14, "", fmt.Sprintf("Username: %s", orNA(profile.User.Username)))
	writeLine(pdf, 14, "", fmt.Sprintf("Email: %s", orNA(profile.User.Email)))
	writeLine(pdf, 14, "", fmt.Sprintf("Bio: %s", orNA(profile.Bio)))
	writeLine(pdf, 14, "", fmt.Sprintf("Current Position: %s", orNA(profile.CurrentPosition)))

	writeLine(pdf, 14, "", "Education:")
	for _, edu := range profile.Education {
		line := strings.TrimSpace(fmt.Sprintf("%s %s", edu.School, edu.Degree))
		if edu.FieldOfStudy != "" {
			line = strings.TrimSpace(line + " (" + edu.FieldOfStudy + ")")
		}
		writeLine(pdf, 12, "", line)
	}

	pdf.Ln(6)
	writeLine(pdf, 14, "U", "Past Experiences:")
	for i, work := range profile.PastWork {
		writeLine(pdf, 12, "", fmt.Sprintf("Company: %s", work.Company))
		writeLine(pdf, 12, "", fmt.Sprintf("Years: %s", work.Years))
		writeLine(pdf, 12, "", fmt.Sprintf("Position: %s", work.Position))
		if i != len(profile.PastWork)-1 {
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("ошибка генерации PDF: %w", err)
	}

	fileName, err := generateExportName()
	if err != nil {
		return "", err
	}

	err = s.storage.Save(ctx, fileName, &buf, int64(buf.Len()), "application/pdf")
	if err != nil {
		return "", fmt.Errorf("ошибка сохранения PDF: %w", err)
	}

	return fileName, nil
}

// renderProfileImage вставляет фото профиля, если оно есть в хранилище.
// Любая ошибка здесь не срывает экспорт - документ просто идёт без фото
func (s *exportService) renderProfileImage(ctx context.Context, pdf *gofpdf.Fpdf, picture string) {
	if picture == "" {
		return
	}

	imageType := pdfImageType(picture)
	if imageType == "" {
		return
	}

	img, err := s.storage.Open(ctx, picture)
	if err != nil {
		return
	}
	defer img.Close()

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(picture, opts, img)
	if pdf.Err() {
		pdf.ClearError()
		return
	}

	pdf.ImageOptions(picture, 80, 15, 50, 0, true, opts, 0, "")
	pdf.Ln(4)
}

func pdfImageType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".png":
		return "PNG"
	case ".gif":
		return "GIF"
	default:
		return ""
	}
}

func writeLine(pdf *gofpdf.Fpdf, size float64, style, text string) {
	pdf.SetFont("Helvetica", style, size)
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

// generateExportName - 32 случайных байта в hex плюс расширение,
// как и у остальных генерируемых файлов
func generateExportName() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("ошибка генерации имени файла: %w", err)
	}
	return hex.EncodeToString(b) + ".pdf", nil
}
