package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

const userColumns = `id, email, name, image_url, password_hash, industry, experience, bio, skills, created_at, updated_at`

// CreateUser inserts u, assigning ID and timestamps.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	now := s.now()
	u.ID = uuid.New().String()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Skills == nil {
		u.Skills = []string{}
	}
	skills, err := json.Marshal(u.Skills)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users(`+userColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.ImageURL, u.PasswordHash,
		u.Industry, u.Experience, u.Bio, string(skills),
		formatTime(now), formatTime(now),
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// SaveOnboarding updates the user's career profile and, when insight is non-nil, stores it
// for the profile's industry unless one already exists. Both happen in one transaction.
func (s *Store) SaveOnboarding(ctx context.Context, userID string, profile models.UserProfile, insight *models.IndustryInsight) (models.User, error) {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return models.User{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("beginning onboarding: %w", err)
	}
	defer tx.Rollback()

	if insight != nil {
		if err := insertInsightIfAbsent(ctx, tx, insight); err != nil {
			return models.User{}, err
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET industry = ?, experience = ?, bio = ?, skills = ?, updated_at = ? WHERE id = ?`,
		profile.Industry, profile.Experience, profile.Bio, string(skills), formatTime(s.now()), userID,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("updating user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.User{}, ErrNotFound
	}

	row := tx.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("committing onboarding: %w", err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u                models.User
		skills           string
		created, updated string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.ImageURL, &u.PasswordHash,
		&u.Industry, &u.Experience, &u.Bio, &skills,
		&created, &updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, err
	}
	if err := json.Unmarshal([]byte(skills), &u.Skills); err != nil {
		u.Skills = []string{}
	}
	u.CreatedAt = parseTime(created)
	u.UpdatedAt = parseTime(updated)
	return u, nil
}
