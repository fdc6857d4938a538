package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxSupportRepository persists support requests.
type PgxSupportRepository struct {
	BaseRepository
}

func newPgxSupportRepository(db *pgxpool.Pool) portsrepo.SupportRepositoryFacade {
	return &PgxSupportRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectSupportFields = `
	request_id, user_id, subject, message, status, created_at
`

func scanSupportRequest(row pgx.Row) (*domain.SupportRequest, error) {
	var s domain.SupportRequest
	err := row.Scan(
		&s.RequestID,
		&s.UserID,
		&s.Subject,
		&s.Message,
		&s.Status,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSupportRequest persists a new support request.
func (r *PgxSupportRepository) SaveSupportRequest(ctx context.Context, request domain.SupportRequest) error {
	query := `
		INSERT INTO support_requests (
			request_id, user_id, subject, message, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.Pool.Exec(ctx, query,
		request.RequestID,
		request.UserID,
		request.Subject,
		request.Message,
		request.Status,
		request.CreatedAt,
	)
	return translateError(err, "failed to save support request")
}

// FindSupportRequestByID retrieves a specific support request.
func (r *PgxSupportRepository) FindSupportRequestByID(ctx context.Context, requestID string) (*domain.SupportRequest, error) {
	query := `SELECT ` + selectSupportFields + ` FROM support_requests WHERE request_id = $1`
	request, err := scanSupportRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		return nil, translateError(err, "failed to find support request by ID")
	}
	return request, nil
}

// FindSupportRequestsByUser retrieves a user's requests, newest first.
func (r *PgxSupportRepository) FindSupportRequestsByUser(ctx context.Context, userID string) ([]domain.SupportRequest, error) {
	query := `
		SELECT ` + selectSupportFields + `
		FROM support_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.querySupportRequests(ctx, query, userID)
}

// FindSupportRequests retrieves a paginated list of all requests.
func (r *PgxSupportRepository) FindSupportRequests(ctx context.Context, limit int, offset int) ([]domain.SupportRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectSupportFields + `
		FROM support_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.querySupportRequests(ctx, query, limit, offset)
}

func (r *PgxSupportRepository) querySupportRequests(ctx context.Context, query string, args ...any) ([]domain.SupportRequest, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to query support requests")
	}
	defer rows.Close()

	requests := []domain.SupportRequest{}
	for rows.Next() {
		request, err := scanSupportRequest(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan support request row")
		}
		requests = append(requests, *request)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating support request rows")
	}
	return requests, nil
}

// UpdateSupportRequestStatus updates a request's status.
func (r *PgxSupportRepository) UpdateSupportRequestStatus(ctx context.Context, requestID string, status domain.SupportRequestStatus) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE support_requests SET status = $1 WHERE request_id = $2`, status, requestID)
	if err != nil {
		return translateError(err, "failed to update support request status")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
