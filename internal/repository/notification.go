package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"eblog_backend/internal/model"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification.
func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	query := `
		INSERT INTO notifications (type, blog_id, notification_for, actor_id, comment_id, reply_id, replied_on_comment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, seen, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		n.Type,
		n.BlogID,
		n.NotificationFor,
		n.ActorID,
		n.CommentID,
		n.ReplyID,
		n.RepliedOnCommentID,
	)

	if err := row.Scan(&n.ID, &n.Seen, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

// ListForUser returns the most recent notifications for a recipient.
func (r *notificationRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, type, blog_id, notification_for, actor_id, comment_id, reply_id, replied_on_comment_id, seen, created_at, updated_at
		FROM notifications
		WHERE notification_for = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var notifications []model.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// MarkSeen marks the given notifications as seen, scoped to the recipient so
// one user cannot clear another's badge.
func (r *notificationRepository) MarkSeen(ctx context.Context, userID int64, notificationIDs []int64) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	query := `
		UPDATE notifications
		SET seen = TRUE, updated_at = NOW()
		WHERE notification_for = $1 AND id = ANY($2)
	`

	_, err := r.db.ExecContext(ctx, query, userID, pq.Array(notificationIDs))
	if err != nil {
		return fmt.Errorf("mark notifications seen: %w", err)
	}

	return nil
}

// CountUnseen returns the unseen notification count for the badge.
func (r *notificationRepository) CountUnseen(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE notification_for = $1 AND seen = FALSE`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("count unseen notifications: %w", err)
	}

	return count, nil
}
