package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxMessageRepository persists lead discussion messages. Mentions are stored
// as a text[] column.
type PgxMessageRepository struct {
	BaseRepository
}

func newPgxMessageRepository(db *pgxpool.Pool) portsrepo.MessageRepositoryFacade {
	return &PgxMessageRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectMessageFields = `
	message_id, lead_id, sender_id, content, read, mentions, delivery_state, created_at
`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(
		&m.MessageID,
		&m.LeadID,
		&m.SenderID,
		&m.Content,
		&m.Read,
		&m.Mentions,
		&m.DeliveryState,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMessage persists a new message.
func (r *PgxMessageRepository) SaveMessage(ctx context.Context, message domain.Message) error {
	query := `
		INSERT INTO messages (
			message_id, lead_id, sender_id, content, read, mentions, delivery_state, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.Pool.Exec(ctx, query,
		message.MessageID,
		message.LeadID,
		message.SenderID,
		message.Content,
		message.Read,
		message.Mentions,
		message.DeliveryState,
		message.CreatedAt,
	)
	return translateError(err, "failed to save message")
}

// FindMessageByID retrieves a specific message.
func (r *PgxMessageRepository) FindMessageByID(ctx context.Context, messageID string) (*domain.Message, error) {
	query := `SELECT ` + selectMessageFields + ` FROM messages WHERE message_id = $1`
	message, err := scanMessage(r.Pool.QueryRow(ctx, query, messageID))
	if err != nil {
		return nil, translateError(err, "failed to find message by ID")
	}
	return message, nil
}

// FindMessagesByLead retrieves a lead's thread in chronological order.
func (r *PgxMessageRepository) FindMessagesByLead(ctx context.Context, leadID string) ([]domain.Message, error) {
	query := `
		SELECT ` + selectMessageFields + `
		FROM messages
		WHERE lead_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.Pool.Query(ctx, query, leadID)
	if err != nil {
		return nil, translateError(err, "failed to query messages")
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan message row")
		}
		messages = append(messages, *message)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating message rows")
	}
	return messages, nil
}

// UpdateDeliveryState records the outcome of a message send.
func (r *PgxMessageRepository) UpdateDeliveryState(ctx context.Context, messageID string, state domain.MessageDeliveryState) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE messages SET delivery_state = $1 WHERE message_id = $2`, state, messageID)
	if err != nil {
		return translateError(err, "failed to update message delivery state")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMessage removes a message.
func (r *PgxMessageRepository) DeleteMessage(ctx context.Context, messageID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM messages WHERE message_id = $1`, messageID)
	if err != nil {
		return translateError(err, "failed to delete message")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
