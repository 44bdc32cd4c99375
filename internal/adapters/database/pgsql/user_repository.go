package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portsrepo "github.com/activitydash/activity_dashboard_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements the port.
var _ portsrepo.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
        SELECT id, username, name, email, role, password_hash
        FROM users
        WHERE id = $1;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT id, username, name, email, role, password_hash
        FROM users
        WHERE username = $1;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) UpdateUserEmail(ctx context.Context, userID int64, email string) error {
	query := `
        UPDATE users
        SET email = $1
        WHERE id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, email, userID)
	if err != nil {
		return fmt.Errorf("failed to update user email: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateUserPassword(ctx context.Context, userID int64, credential string) error {
	query := `
        UPDATE users
        SET password_hash = $1
        WHERE id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, credential, userID)
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanUser maps one user row, classifying the stored credential once so
// callers never re-inspect the raw column value.
func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var storedCredential string
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Name,
		&user.Email,
		&user.Role,
		&storedCredential,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	user.Credential = domain.ParseCredential(storedCredential)
	return &user, nil
}
