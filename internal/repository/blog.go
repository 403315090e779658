package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"eblog_backend/internal/model"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts the blog and increments the author's total_posts in one
// transaction, so a counter failure never leaves an orphaned blog row.
func (r *blogRepository) Create(ctx context.Context, blog *model.Blog, postsIncrement int) error {
	contentJSON, err := json.Marshal(blog.Content)
	if err != nil {
		return fmt.Errorf("failed to encode blog content: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO blogs (blog_id, title, banner, description, content, tags, draft, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	row := tx.QueryRowxContext(ctx, insertQuery,
		blog.BlogID,
		blog.Title,
		blog.Banner,
		blog.Description,
		contentJSON,
		blog.Tags,
		blog.Draft,
		blog.AuthorID,
	)

	if err := row.Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}

	updateQuery := `UPDATE users SET total_posts = total_posts + $1, updated_at = NOW() WHERE id = $2`
	if _, err := tx.ExecContext(ctx, updateQuery, postsIncrement, blog.AuthorID); err != nil {
		return fmt.Errorf("failed to update total posts number: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByBlogID retrieves a blog by its composite identifier.
func (r *blogRepository) GetByBlogID(ctx context.Context, blogID string) (*model.Blog, error) {
	query := `
		SELECT id, blog_id, title, banner, description, content, tags, draft, author_id, created_at, updated_at
		FROM blogs
		WHERE blog_id = $1
	`

	type blogRow struct {
		model.Blog
		ContentJSON []byte `db:"content"`
	}

	var row blogRow
	err := r.db.GetContext(ctx, &row, query, blogID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog by blog_id: %w", err)
	}

	blog := row.Blog
	if len(row.ContentJSON) > 0 {
		if err := json.Unmarshal(row.ContentJSON, &blog.Content); err != nil {
			return nil, fmt.Errorf("failed to decode blog content: %w", err)
		}
	}

	return &blog, nil
}
