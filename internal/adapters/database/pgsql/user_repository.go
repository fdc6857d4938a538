package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxUserRepository persists users and their profile fields.
type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectUserFields = `
	user_id, email, company_name, phone, role, is_admin, password_hash,
	auth_provider, provider_user_id,
	refresh_token_hash, refresh_token_expiry_time,
	reset_token_hash, reset_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.CompanyName,
		&user.Phone,
		&user.Role,
		&user.IsAdmin,
		&user.PasswordHash,
		&user.AuthProvider,
		&user.ProviderUserID,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiryTime,
		&user.ResetTokenHash,
		&user.ResetTokenExpiryTime,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, email, company_name, phone, role, is_admin, password_hash,
			auth_provider, provider_user_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.CompanyName,
		user.Phone,
		user.Role,
		user.IsAdmin,
		user.PasswordHash,
		user.AuthProvider,
		user.ProviderUserID,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	return translateError(err, "failed to save user")
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + selectUserFields + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, translateError(err, "failed to find user by ID")
	}
	return user, nil
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + selectUserFields + ` FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, translateError(err, "failed to find user by email")
	}
	return user, nil
}

// FindUserByProviderDetails retrieves a user by external auth provider identity.
func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + selectUserFields + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, provider, providerUserID))
	if err != nil {
		return nil, translateError(err, "failed to find user by provider")
	}
	return user, nil
}

// FindUsers retrieves a paginated list of users.
func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to query users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan user row")
		}
		users = append(users, *user)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating user rows")
	}
	return users, nil
}

// UpdateUser updates an existing user's profile details.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET company_name = $1, phone = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5 AND deleted_at IS NULL
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.CompanyName,
		user.Phone,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.UserID,
	)
	if err != nil {
		return translateError(err, "failed to update user")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetAdminApproval flips the is_admin approval flag for a user.
func (r *PgxUserRepository) SetAdminApproval(ctx context.Context, userID string, approved bool, updatedBy string) error {
	query := `
		UPDATE users
		SET is_admin = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.Pool.Exec(ctx, query, approved, time.Now(), updatedBy, userID)
	if err != nil {
		return translateError(err, "failed to set admin approval")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = $3
		WHERE user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.Pool.Exec(ctx, query, refreshTokenHash, refreshTokenExpiryTime, time.Now(), userID)
	if err != nil {
		return translateError(err, "failed to update refresh token")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearRefreshToken removes any stored refresh token for the user.
func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET refresh_token_hash = '', refresh_token_expiry_time = NULL, last_updated_at = $1
		WHERE user_id = $2 AND deleted_at IS NULL
	`
	_, err := r.Pool.Exec(ctx, query, time.Now(), userID)
	return translateError(err, "failed to clear refresh token")
}

// UpdateResetToken stores the hash and expiry of a password-reset token.
func (r *PgxUserRepository) UpdateResetToken(ctx context.Context, userID string, resetTokenHash string, resetTokenExpiryTime time.Time) error {
	query := `
		UPDATE users
		SET reset_token_hash = $1, reset_token_expiry_time = $2, last_updated_at = $3
		WHERE user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.Pool.Exec(ctx, query, resetTokenHash, resetTokenExpiryTime, time.Now(), userID)
	if err != nil {
		return translateError(err, "failed to update reset token")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash and clears any reset token.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token_hash = '', reset_token_expiry_time = NULL, last_updated_at = $2
		WHERE user_id = $3 AND deleted_at IS NULL
	`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return translateError(err, "failed to update password")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted marks a user as deleted (soft delete).
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND deleted_at IS NULL
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, userID)
	if err != nil {
		return translateError(err, "failed to mark user deleted")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
