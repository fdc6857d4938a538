package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxLeadRepository persists sales pipeline leads.
type PgxLeadRepository struct {
	BaseRepository
}

func newPgxLeadRepository(db *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectLeadFields = `
	lead_id, user_id, name, email, phone, status, source, notes,
	assigned_to, property_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.LeadID,
		&l.UserID,
		&l.Name,
		&l.Email,
		&l.Phone,
		&l.Status,
		&l.Source,
		&l.Notes,
		&l.AssignedTo,
		&l.PropertyID,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// SaveLead persists a new lead.
func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	query := `
		INSERT INTO leads (
			lead_id, user_id, name, email, phone, status, source, notes,
			assigned_to, property_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.Pool.Exec(ctx, query,
		lead.LeadID,
		lead.UserID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Status,
		lead.Source,
		lead.Notes,
		lead.AssignedTo,
		lead.PropertyID,
		lead.CreatedAt,
		lead.CreatedBy,
		lead.LastUpdatedAt,
		lead.LastUpdatedBy,
	)
	return translateError(err, "failed to save lead")
}

// FindLeadByID retrieves a specific lead.
func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	query := `SELECT ` + selectLeadFields + ` FROM leads WHERE lead_id = $1`
	lead, err := scanLead(r.Pool.QueryRow(ctx, query, leadID))
	if err != nil {
		return nil, translateError(err, "failed to find lead by ID")
	}
	return lead, nil
}

// FindLeadsByOwner retrieves all leads assigned to a user, newest first.
func (r *PgxLeadRepository) FindLeadsByOwner(ctx context.Context, ownerUserID string) ([]domain.Lead, error) {
	query := `
		SELECT ` + selectLeadFields + `
		FROM leads
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryLeads(ctx, query, ownerUserID)
}

// FindLeads retrieves a paginated list of all leads.
func (r *PgxLeadRepository) FindLeads(ctx context.Context, limit int, offset int) ([]domain.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectLeadFields + `
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryLeads(ctx, query, limit, offset)
}

func (r *PgxLeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]domain.Lead, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to query leads")
	}
	defer rows.Close()

	leads := []domain.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan lead row")
		}
		leads = append(leads, *lead)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating lead rows")
	}
	return leads, nil
}

// UpdateLead updates an existing lead.
func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, email = $2, phone = $3, status = $4, source = $5,
			notes = $6, assigned_to = $7, property_id = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE lead_id = $11
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Status,
		lead.Source,
		lead.Notes,
		lead.AssignedTo,
		lead.PropertyID,
		lead.LastUpdatedAt,
		lead.LastUpdatedBy,
		lead.LeadID,
	)
	if err != nil {
		return translateError(err, "failed to update lead")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLead removes a lead.
func (r *PgxLeadRepository) DeleteLead(ctx context.Context, leadID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM leads WHERE lead_id = $1`, leadID)
	if err != nil {
		return translateError(err, "failed to delete lead")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
