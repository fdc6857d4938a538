package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxNotificationRepository persists in-app notifications.
type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectNotificationFields = `
	notification_id, user_id, type, message, read, created_at
`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.NotificationID,
		&n.UserID,
		&n.Type,
		&n.Message,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// SaveNotification persists a new notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (
			notification_id, user_id, type, message, read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		notification.Type,
		notification.Message,
		notification.Read,
		notification.CreatedAt,
	)
	return translateError(err, "failed to save notification")
}

// FindNotificationByID retrieves a specific notification.
func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + selectNotificationFields + ` FROM notifications WHERE notification_id = $1`
	notification, err := scanNotification(r.Pool.QueryRow(ctx, query, notificationID))
	if err != nil {
		return nil, translateError(err, "failed to find notification by ID")
	}
	return notification, nil
}

// FindNotificationsByUser retrieves a user's notifications, newest first.
func (r *PgxNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectNotificationFields + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to query notifications")
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan notification row")
		}
		notifications = append(notifications, *notification)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating notification rows")
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications for a user.
func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, translateError(err, "failed to count unread notifications")
	}
	return count, nil
}

// MarkRead marks a single notification as read.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE notification_id = $1`, notificationID)
	if err != nil {
		return translateError(err, "failed to mark notification read")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read.
func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`, userID)
	return translateError(err, "failed to mark notifications read")
}
