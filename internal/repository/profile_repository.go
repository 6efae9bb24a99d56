package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"proconnect/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

// UpdateProfileRequest - явный allow-list обновляемых полей профиля.
// nil означает "поле не менять".
type UpdateProfileRequest struct {
	Bio             *string               `json:"bio"`
	CurrentPosition *string               `json:"currentPosition"`
	Education       *models.EducationList `json:"education"`
	PastWork        *models.WorkList      `json:"pastWork"`
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const profileWithUserColumns = `
	p.profile_id, p.user_id, p.bio, p.current_position, p.education, p.past_work,
	u.user_id AS "user.user_id",
	u.name AS "user.name",
	u.username AS "user.username",
	u.email AS "user.email",
	u.profile_picture AS "user.profile_picture"
`

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении профиля: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET bio = :bio, current_position = :current_position,
		    education = :education, past_work = :past_work
		WHERE user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *profileRepository) GetAllWithUser(ctx context.Context) ([]models.ProfileWithUser, error) {
	query := `
		SELECT ` + profileWithUserColumns + `
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
	`

	var profiles []models.ProfileWithUser
	err := r.db.SelectContext(ctx, &profiles, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка профилей: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) GetByUserIDWithUser(ctx context.Context, userID string) (*models.ProfileWithUser, error) {
	query := `
		SELECT ` + profileWithUserColumns + `
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.user_id = $1
	`

	var profile models.ProfileWithUser
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении профиля с пользователем: %w", err)
	}

	return &profile, nil
}
