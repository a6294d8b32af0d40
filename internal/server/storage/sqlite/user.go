package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/neonsoul/neonsoul/internal/models"
	"github.com/neonsoul/neonsoul/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, avatar_name, avatar_personality, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var avatarName, avatarPersonality sql.NullString
	if user.Avatar != nil {
		avatarName = sql.NullString{String: user.Avatar.Name, Valid: true}
		avatarPersonality = sql.NullString{String: user.Avatar.Personality, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		avatarName,
		avatarPersonality,
		user.CreatedAt,
	)

	if err != nil {
		// Проверяем на duplicate email
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, avatar_name, avatar_personality, created_at
		FROM users
		WHERE email = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, avatar_name, avatar_personality, created_at
		FROM users
		WHERE id = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

// UpdateAvatar replaces the user's avatar sub-record entirely
func (s *Storage) UpdateAvatar(ctx context.Context, userID string, avatar *models.Avatar) error {
	query := `UPDATE users SET avatar_name = ?, avatar_personality = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, avatar.Name, avatar.Personality, userID)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// scanUser читает одну строку users в модель
func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var avatarName, avatarPersonality sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&avatarName,
		&avatarPersonality,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if avatarName.Valid {
		user.Avatar = &models.Avatar{
			Name:        avatarName.String,
			Personality: avatarPersonality.String,
		}
	}

	return user, nil
}
