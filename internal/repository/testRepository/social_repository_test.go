package testRepository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"reel/internal/models"
	"reel/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postCols = []string{"post_id", "user_id", "caption", "media_url", "tags", "visibility", "is_deleted", "created_at", "updated_at"}

func TestPostRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		req         models.CreatePostRequest
		tags        []string
		setupMock   func(mock sqlmock.Sqlmock)
		expectError string
	}{
		{
			name: "post without tags skips usage update",
			req:  models.CreatePostRequest{UserID: 1, Caption: "first cut"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO posts`).
					WithArgs(int64(1), "first cut", nil, nil, "public").
					WillReturnRows(sqlmock.NewRows(postCols).AddRow(1, 1, "first cut", nil, nil, "public", false, now, now))
				mock.ExpectCommit()
			},
		},
		{
			name: "post with tags bumps active tag usage",
			req:  models.CreatePostRequest{UserID: 1, Caption: "bts", Tags: stringPtr("BTS, noir")},
			tags: []string{"bts", "noir"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO posts`).
					WithArgs(int64(1), "bts", nil, "BTS, noir", "public").
					WillReturnRows(sqlmock.NewRows(postCols).AddRow(2, 1, "bts", nil, "BTS, noir", "public", false, now, now))
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE trend_tags SET usage_count = usage_count + 1, updated_at = CURRENT_TIMESTAMP WHERE status = ? AND LOWER(tag_name) IN (?, ?)`)).
					WithArgs("active", "bts", "noir").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name: "tag update failure rolls back",
			req:  models.CreatePostRequest{UserID: 1, Caption: "bts", Tags: stringPtr("bts")},
			tags: []string{"bts"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO posts`).
					WillReturnRows(sqlmock.NewRows(postCols).AddRow(3, 1, "bts", nil, "bts", "public", false, now, now))
				mock.ExpectExec(`UPDATE trend_tags`).WillReturnError(errors.New("lock timeout"))
				mock.ExpectRollback()
			},
			expectError: "failed to update tag usage",
		},
		{
			name: "unknown author",
			req:  models.CreatePostRequest{UserID: 42, Caption: "x", Visibility: "private"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO posts`).
					WithArgs(int64(42), "x", nil, nil, "private").
					WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
			expectError: repository.ErrInvalidReference.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.setupMock(mock)

			post, err := repository.NewPostRepository(db).Create(context.Background(), tt.req, tt.tags)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Caption, post.Caption)
		})
	}
}

func TestPostRepository_ListFilters(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM posts WHERE is_deleted = ? AND user_id = ? AND visibility = ? ORDER BY created_at DESC`)).
		WithArgs(false, int64(8), "public").
		WillReturnRows(sqlmock.NewRows(postCols).AddRow(9, 8, "reel", nil, nil, "public", false, time.Now(), time.Now()))

	posts, err := repository.NewPostRepository(db).List(context.Background(), models.PostFilter{UserID: int64Ptr(8), Visibility: "public"})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(9), posts[0].PostID)
}

func TestPostRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE posts SET is_deleted = ?`)).
		WithArgs(true, int64(9), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repository.NewPostRepository(db).SoftDelete(context.Background(), 9))
}

var interactionCols = []string{"interaction_id", "post_id", "user_id", "interaction_type", "comment_text", "created_at"}

func TestInteractionRepository(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE EXISTS (SELECT 1 FROM posts WHERE post_id = ? AND NOT is_deleted)`)).
		WithArgs(int64(9), int64(2), "comment", "love the grade", int64(9)).
		WillReturnRows(sqlmock.NewRows(interactionCols).AddRow(1, 9, 2, "comment", "love the grade", now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM post_interactions WHERE post_id = ?`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(interactionCols).AddRow(1, 9, 2, "comment", "love the grade", now))
	mock.ExpectExec(`DELETE FROM post_interactions`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := repository.NewInteractionRepository(db)

	interaction, err := repo.Create(context.Background(), models.CreateInteractionRequest{
		PostID:          9,
		UserID:          2,
		InteractionType: models.InteractionComment,
		CommentText:     stringPtr("love the grade"),
	})
	require.NoError(t, err)
	assert.Equal(t, "love the grade", *interaction.CommentText)

	interactions, err := repo.List(context.Background(), models.InteractionFilter{PostID: int64Ptr(9)})
	require.NoError(t, err)
	assert.Len(t, interactions, 1)

	assert.NoError(t, repo.Delete(context.Background(), 1))
}

func TestInteractionRepository_CreateOnDeletedPost(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO post_interactions`).
		WithArgs(int64(9), int64(2), "like", nil, int64(9)).
		WillReturnRows(sqlmock.NewRows(interactionCols))

	_, err := repository.NewInteractionRepository(db).Create(context.Background(), models.CreateInteractionRequest{
		PostID:          9,
		UserID:          2,
		InteractionType: models.InteractionLike,
	})

	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

var messageCols = []string{"message_id", "sender_id", "receiver_id", "content", "is_read", "is_starred", "is_archived",
	"sender_deleted", "receiver_deleted", "created_at"}

func TestMessageRepository_ListForUser(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE (sender_id = ? AND sender_deleted = ?) OR (receiver_id = ? AND receiver_deleted = ?)`)).
		WithArgs(int64(2), false, int64(2), false).
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow(1, 2, 3, "hey", false, false, false, false, false, now).
			AddRow(2, 3, 2, "hi", true, false, false, false, false, now))

	messages, err := repository.NewMessageRepository(db).ListForUser(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessageRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`UPDATE messages SET`).
		WithArgs(true, nil, nil, int64(1)).
		WillReturnRows(sqlmock.NewRows(messageCols).AddRow(1, 2, 3, "hey", true, false, false, false, false, time.Now()))

	message, err := repository.NewMessageRepository(db).Update(context.Background(), 1, models.UpdateMessageRequest{IsRead: boolPtr(true)})

	require.NoError(t, err)
	assert.True(t, message.IsRead)
}

func TestMessageRepository_DeleteForUser(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "participant hides message", affected: 1},
		{name: "not a participant", affected: 0, wantErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)

			mock.ExpectExec(`UPDATE messages SET sender_deleted = CASE`).
				WithArgs(int64(3), true, int64(3), true, int64(1), int64(3), int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repository.NewMessageRepository(db).DeleteForUser(context.Background(), 1, 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
