package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxPropertyRepository persists properties.
type PgxPropertyRepository struct {
	BaseRepository
}

func newPgxPropertyRepository(db *pgxpool.Pool) portsrepo.PropertyRepositoryFacade {
	return &PgxPropertyRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectPropertyFields = `
	property_id, name, address, unit_count, nightly_rate,
	original_rate, original_currency, rating, status, assigned_to,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	var originalCurrency *string
	err := row.Scan(
		&p.PropertyID,
		&p.Name,
		&p.Address,
		&p.UnitCount,
		&p.NightlyRate,
		&p.OriginalRate,
		&originalCurrency,
		&p.Rating,
		&p.Status,
		&p.AssignedTo,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if originalCurrency != nil {
		p.OriginalCurrency = domain.Currency(*originalCurrency)
	}
	return &p, nil
}

func nullableCurrency(c domain.Currency) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

// SaveProperty persists a new property.
func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	query := `
		INSERT INTO properties (
			property_id, name, address, unit_count, nightly_rate,
			original_rate, original_currency, rating, status, assigned_to,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.Pool.Exec(ctx, query,
		property.PropertyID,
		property.Name,
		property.Address,
		property.UnitCount,
		property.NightlyRate,
		property.OriginalRate,
		nullableCurrency(property.OriginalCurrency),
		property.Rating,
		property.Status,
		property.AssignedTo,
		property.CreatedAt,
		property.CreatedBy,
		property.LastUpdatedAt,
		property.LastUpdatedBy,
	)
	return translateError(err, "failed to save property")
}

// FindPropertyByID retrieves a specific property.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + selectPropertyFields + ` FROM properties WHERE property_id = $1`
	property, err := scanProperty(r.Pool.QueryRow(ctx, query, propertyID))
	if err != nil {
		return nil, translateError(err, "failed to find property by ID")
	}
	return property, nil
}

// FindPropertiesByOwner retrieves all properties assigned to a user.
func (r *PgxPropertyRepository) FindPropertiesByOwner(ctx context.Context, ownerUserID string) ([]domain.Property, error) {
	query := `
		SELECT ` + selectPropertyFields + `
		FROM properties
		WHERE assigned_to = $1
		ORDER BY created_at DESC
	`
	return r.queryProperties(ctx, query, ownerUserID)
}

// FindProperties retrieves a paginated list of all properties.
func (r *PgxPropertyRepository) FindProperties(ctx context.Context, limit int, offset int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectPropertyFields + `
		FROM properties
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryProperties(ctx, query, limit, offset)
}

func (r *PgxPropertyRepository) queryProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to query properties")
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan property row")
		}
		properties = append(properties, *property)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating property rows")
	}
	return properties, nil
}

// UpdateProperty updates an existing property.
func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	query := `
		UPDATE properties
		SET name = $1, address = $2, unit_count = $3, nightly_rate = $4,
			original_rate = $5, original_currency = $6, rating = $7, status = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE property_id = $11
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		property.Name,
		property.Address,
		property.UnitCount,
		property.NightlyRate,
		property.OriginalRate,
		nullableCurrency(property.OriginalCurrency),
		property.Rating,
		property.Status,
		property.LastUpdatedAt,
		property.LastUpdatedBy,
		property.PropertyID,
	)
	if err != nil {
		return translateError(err, "failed to update property")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProperty removes a property.
func (r *PgxPropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM properties WHERE property_id = $1`, propertyID)
	if err != nil {
		return translateError(err, "failed to delete property")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
