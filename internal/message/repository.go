package message

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrMessageNotFound = errors.New("message not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const messageColumns = `id, gym_id, sender_id, recipient_id, subject, body, read, created_at`

func (r *repository) Create(ctx context.Context, gymID, senderID int, recipientID *int, subject, body string) (*Message, error) {
	query := `
		INSERT INTO messages (gym_id, sender_id, recipient_id, subject, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns

	var m Message
	err := r.db.GetContext(ctx, &m, query, gymID, senderID, recipientID, subject, body)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE id = $1 AND gym_id = $2
	`

	var m Message
	err := r.db.GetContext(ctx, &m, query, id, gymID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Inbox returns direct messages for the profile plus every broadcast in the
// gym.
func (r *repository) Inbox(ctx context.Context, gymID, profileID int) ([]Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE gym_id = $1 AND (recipient_id = $2 OR recipient_id IS NULL)
		ORDER BY created_at DESC
	`

	var messages []Message
	err := r.db.SelectContext(ctx, &messages, query, gymID, profileID)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *repository) UnreadCount(ctx context.Context, gymID, profileID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE gym_id = $1 AND recipient_id = $2 AND read = FALSE
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID, profileID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) MarkRead(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE messages SET read = TRUE
		WHERE id = $1 AND gym_id = $2 AND read = FALSE
	`, id, gymID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
