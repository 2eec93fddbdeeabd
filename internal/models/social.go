package models

import "time"

type Post struct {
	PostID     int64     `json:"post_id" db:"post_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Caption    string    `json:"caption" db:"caption"`
	MediaURL   *string   `json:"media_url" db:"media_url"`
	Tags       *string   `json:"tags" db:"tags"`
	Visibility string    `json:"visibility" db:"visibility"`
	IsDeleted  bool      `json:"is_deleted" db:"is_deleted"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type CreatePostRequest struct {
	UserID     int64   `json:"user_id" db:"user_id" validate:"required"`
	Caption    string  `json:"caption" db:"caption" validate:"required"`
	MediaURL   *string `json:"media_url" db:"media_url"`
	Tags       *string `json:"tags" db:"tags"`
	Visibility string  `json:"visibility" db:"visibility" validate:"omitempty,oneof=public private"`
}

type UpdatePostRequest struct {
	Caption    *string `json:"caption"`
	MediaURL   *string `json:"media_url"`
	Tags       *string `json:"tags"`
	Visibility *string `json:"visibility" validate:"omitempty,oneof=public private"`
}

func (r UpdatePostRequest) IsEmpty() bool {
	return r.Caption == nil && r.MediaURL == nil && r.Tags == nil && r.Visibility == nil
}

type PostFilter struct {
	UserID     *int64
	Visibility string
}

const (
	InteractionLike    = "like"
	InteractionComment = "comment"
	InteractionShare   = "share"
	InteractionSave    = "save"
)

type PostInteraction struct {
	InteractionID   int64     `json:"interaction_id" db:"interaction_id"`
	PostID          int64     `json:"post_id" db:"post_id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	InteractionType string    `json:"interaction_type" db:"interaction_type"`
	CommentText     *string   `json:"comment_text" db:"comment_text"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type CreateInteractionRequest struct {
	PostID          int64   `json:"post_id" db:"post_id" validate:"required"`
	UserID          int64   `json:"user_id" db:"user_id" validate:"required"`
	InteractionType string  `json:"interaction_type" db:"interaction_type" validate:"required,oneof=like comment share save"`
	CommentText     *string `json:"comment_text" db:"comment_text" validate:"required_if=InteractionType comment"`
}

type InteractionFilter struct {
	PostID *int64
	UserID *int64
}

type Message struct {
	MessageID       int64     `json:"message_id" db:"message_id"`
	SenderID        int64     `json:"sender_id" db:"sender_id"`
	ReceiverID      int64     `json:"receiver_id" db:"receiver_id"`
	Content         string    `json:"content" db:"content"`
	IsRead          bool      `json:"is_read" db:"is_read"`
	IsStarred       bool      `json:"is_starred" db:"is_starred"`
	IsArchived      bool      `json:"is_archived" db:"is_archived"`
	SenderDeleted   bool      `json:"-" db:"sender_deleted"`
	ReceiverDeleted bool      `json:"-" db:"receiver_deleted"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// VisibleTo reports whether userID is a participant who has not deleted their side.
func (m Message) VisibleTo(userID int64) bool {
	return (m.SenderID == userID && !m.SenderDeleted) || (m.ReceiverID == userID && !m.ReceiverDeleted)
}

type CreateMessageRequest struct {
	SenderID   int64  `json:"sender_id" db:"sender_id" validate:"required"`
	ReceiverID int64  `json:"receiver_id" db:"receiver_id" validate:"required"`
	Content    string `json:"content" db:"content" validate:"required"`
}

type UpdateMessageRequest struct {
	IsRead     *bool `json:"is_read"`
	IsStarred  *bool `json:"is_starred"`
	IsArchived *bool `json:"is_archived"`
}

func (r UpdateMessageRequest) IsEmpty() bool {
	return r.IsRead == nil && r.IsStarred == nil && r.IsArchived == nil
}
