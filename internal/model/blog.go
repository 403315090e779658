package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Blog publish-time bounds. Drafts bypass all of them except the title.
const (
	MaxBlogDescLength = 200
	MaxBlogTags       = 10
)

// Blog represents a post, published or draft.
type Blog struct {
	ID          int64          `db:"id" json:"-"`
	BlogID      string         `db:"blog_id" json:"blog_id"` // slugified title + random suffix
	Title       string         `db:"title" json:"title"`
	Banner      string         `db:"banner" json:"banner"`
	Description string         `db:"description" json:"desc"`
	Content     BlogContent    `db:"-" json:"content"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Draft       bool           `db:"draft" json:"draft"`
	AuthorID    int64          `db:"author_id" json:"author_id"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// BlogContent is the structured editor body. Blocks are stored opaquely; the
// server only checks that a published post has at least one.
type BlogContent struct {
	Time    int64             `json:"time,omitempty"`
	Blocks  []json.RawMessage `json:"blocks"`
	Version string            `json:"version,omitempty"`
}

// CreatePostRequest is the body for POST /api/v1/post/create-post.
type CreatePostRequest struct {
	Title   string      `json:"title"`
	Banner  string      `json:"banner"`
	Content BlogContent `json:"content"`
	Desc    string      `json:"desc"`
	Tags    []string    `json:"tags"`
	Draft   bool        `json:"draft"`
}

// CreatePostResponse returns the composite blog identifier.
type CreatePostResponse struct {
	ID string `json:"id"`
}

// UploadURLResponse is the body for GET /api/v1/post/image-upload-url.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}

var (
	// ErrBlogNotFound is returned when a blog cannot be found
	ErrBlogNotFound = errors.New("blog not found")
)
