package repository

import (
	"context"

	"eblog_backend/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type BlogRepository interface {
	// Create inserts the blog and bumps the author's total_posts by
	// postsIncrement in a single transaction (0 for drafts, 1 for published).
	Create(ctx context.Context, blog *model.Blog, postsIncrement int) error
	GetByBlogID(ctx context.Context, blogID string) (*model.Blog, error)
}

// NotificationRepository is the declared contract for the like/comment/reply
// pipeline. Creation and consumption live in a collaborating service; this
// API only owns the schema and the access layer.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListForUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error)
	MarkSeen(ctx context.Context, userID int64, notificationIDs []int64) error
	CountUnseen(ctx context.Context, userID int64) (int, error)
}
