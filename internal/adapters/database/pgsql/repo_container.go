package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		PermissionRepo:   newPgxPermissionRepository(dbPool),
		PropertyRepo:     newPgxPropertyRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		LeadRepo:         newPgxLeadRepository(dbPool),
		MessageRepo:      newPgxMessageRepository(dbPool),
		CalendarRepo:     newPgxCalendarRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		SupportRepo:      newPgxSupportRepository(dbPool),
		AdminRequestRepo: newPgxAdminRequestRepository(dbPool),
	}
}
