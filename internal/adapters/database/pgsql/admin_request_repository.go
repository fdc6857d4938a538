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

// PgxAdminRequestRepository persists admin approval requests.
type PgxAdminRequestRepository struct {
	BaseRepository
}

func newPgxAdminRequestRepository(db *pgxpool.Pool) portsrepo.AdminRequestRepositoryFacade {
	return &PgxAdminRequestRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectAdminRequestFields = `
	request_id, user_id, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanAdminRequest(row pgx.Row) (*domain.AdminRequest, error) {
	var a domain.AdminRequest
	err := row.Scan(
		&a.RequestID,
		&a.UserID,
		&a.Status,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveRequest persists a new admin approval request.
func (r *PgxAdminRequestRepository) SaveRequest(ctx context.Context, request domain.AdminRequest) error {
	query := `
		INSERT INTO admin_requests (
			request_id, user_id, status,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.Pool.Exec(ctx, query,
		request.RequestID,
		request.UserID,
		request.Status,
		request.CreatedAt,
		request.CreatedBy,
		request.LastUpdatedAt,
		request.LastUpdatedBy,
	)
	return translateError(err, "failed to save admin request")
}

// FindRequestByID retrieves a specific admin approval request.
func (r *PgxAdminRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.AdminRequest, error) {
	query := `SELECT ` + selectAdminRequestFields + ` FROM admin_requests WHERE request_id = $1`
	request, err := scanAdminRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		return nil, translateError(err, "failed to find admin request by ID")
	}
	return request, nil
}

// FindPendingRequestByUser retrieves a user's pending request, if any.
func (r *PgxAdminRequestRepository) FindPendingRequestByUser(ctx context.Context, userID string) (*domain.AdminRequest, error) {
	query := `
		SELECT ` + selectAdminRequestFields + `
		FROM admin_requests
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at ASC
		LIMIT 1
	`
	request, err := scanAdminRequest(r.Pool.QueryRow(ctx, query, userID, domain.AdminRequestPending))
	if err != nil {
		return nil, translateError(err, "failed to find pending admin request")
	}
	return request, nil
}

// FindRequestsByStatus retrieves requests in a given status, oldest first.
func (r *PgxAdminRequestRepository) FindRequestsByStatus(ctx context.Context, status domain.AdminRequestStatus, limit int, offset int) ([]domain.AdminRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectAdminRequestFields + `
		FROM admin_requests
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.Pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to query admin requests")
	}
	defer rows.Close()

	requests := []domain.AdminRequest{}
	for rows.Next() {
		request, err := scanAdminRequest(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan admin request row")
		}
		requests = append(requests, *request)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating admin request rows")
	}
	return requests, nil
}

// UpdateRequestStatus records the decision on a request.
func (r *PgxAdminRequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.AdminRequestStatus, decidedBy string) error {
	query := `
		UPDATE admin_requests
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE request_id = $4
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status, time.Now(), decidedBy, requestID)
	if err != nil {
		return translateError(err, "failed to update admin request status")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
