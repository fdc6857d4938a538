package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxPermissionRepository reads the static role_permissions grant table.
type PgxPermissionRepository struct {
	BaseRepository
}

func newPgxPermissionRepository(db *pgxpool.Pool) portsrepo.PermissionRepositoryFacade {
	return &PgxPermissionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindPermissionsByRole retrieves all (resource, action) grants for a role.
// An unknown role yields an empty set, not an error.
func (r *PgxPermissionRepository) FindPermissionsByRole(ctx context.Context, role domain.UserRole) ([]domain.Permission, error) {
	query := `
		SELECT role, resource, action
		FROM role_permissions
		WHERE role = $1
		ORDER BY resource, action
	`
	rows, err := r.Pool.Query(ctx, query, role)
	if err != nil {
		return nil, translateError(err, "failed to query role permissions")
	}
	defer rows.Close()

	permissions := []domain.Permission{}
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.Role, &p.Resource, &p.Action); err != nil {
			return nil, translateError(err, "failed to scan permission row")
		}
		permissions = append(permissions, p)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating permission rows")
	}
	return permissions, nil
}
