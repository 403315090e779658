package model

import (
	"time"
)

// Notification types
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeReply   = "reply"
)

// Notification records a like, comment or reply on a blog. The type decides
// which of the comment references are meaningful: likes carry none, comments
// carry CommentID, replies carry ReplyID and RepliedOnCommentID. Comments
// themselves live in a collaborating service, so the references are bare ids.
type Notification struct {
	ID                 int64     `db:"id" json:"id"`
	Type               string    `db:"type" json:"type"`
	BlogID             int64     `db:"blog_id" json:"blog_id"`
	NotificationFor    int64     `db:"notification_for" json:"-"` // recipient
	ActorID            int64     `db:"actor_id" json:"actor_id"`  // who triggered it
	CommentID          *int64    `db:"comment_id" json:"comment_id,omitempty"`
	ReplyID            *int64    `db:"reply_id" json:"reply_id,omitempty"`
	RepliedOnCommentID *int64    `db:"replied_on_comment_id" json:"replied_on_comment_id,omitempty"`
	Seen               bool      `db:"seen" json:"seen"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
