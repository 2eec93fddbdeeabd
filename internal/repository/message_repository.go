package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const messageColumns = `message_id, sender_id, receiver_id, content, is_read, is_starred, is_archived, sender_deleted, receiver_deleted, created_at`

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES (:sender_id, :receiver_id, :content)
		RETURNING ` + messageColumns

	var message models.Message
	if err := namedGet(ctx, r.db, &message, query, req); err != nil {
		return nil, wrapError("failed to create message", err)
	}

	return &message, nil
}

func (r *messageRepository) GetByID(ctx context.Context, messageID int64) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE message_id = ?`

	var message models.Message
	if err := getRebound(ctx, r.db, &message, query, messageID); err != nil {
		return nil, wrapError("failed to get message", err)
	}

	return &message, nil
}

// ListForUser returns the user's inbox and outbox minus the side they deleted.
func (r *messageRepository) ListForUser(ctx context.Context, userID int64) ([]models.Message, error) {
	query := `
		SELECT ` + messageColumns + ` FROM messages
		WHERE (sender_id = ? AND sender_deleted = ?)
		   OR (receiver_id = ? AND receiver_deleted = ?)
		ORDER BY created_at DESC, message_id DESC`

	messages := []models.Message{}
	if err := r.db.SelectContext(ctx, &messages, r.db.Rebind(query), userID, false, userID, false); err != nil {
		return nil, wrapError("failed to list messages", err)
	}

	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (*models.Message, error) {
	query := `
		UPDATE messages SET
			is_read = COALESCE(?, is_read),
			is_starred = COALESCE(?, is_starred),
			is_archived = COALESCE(?, is_archived)
		WHERE message_id = ?
		RETURNING ` + messageColumns

	var message models.Message
	err := getRebound(ctx, r.db, &message, query, req.IsRead, req.IsStarred, req.IsArchived, messageID)
	if err != nil {
		return nil, wrapError("failed to update message", err)
	}

	return &message, nil
}

// DeleteForUser hides the message from one participant. The row stays for the other side.
func (r *messageRepository) DeleteForUser(ctx context.Context, messageID, userID int64) error {
	query := `
		UPDATE messages SET
			sender_deleted = CASE WHEN sender_id = ? THEN ? ELSE sender_deleted END,
			receiver_deleted = CASE WHEN receiver_id = ? THEN ? ELSE receiver_deleted END
		WHERE message_id = ? AND (sender_id = ? OR receiver_id = ?)`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		userID, true, userID, true, messageID, userID, userID)
	if err != nil {
		return wrapError("failed to delete message", err)
	}

	return checkAffected("failed to delete message", result)
}
