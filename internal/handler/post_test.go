package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eblog_backend/internal/model"
	"eblog_backend/internal/service"
	"eblog_backend/internal/transport/http/middleware"
)

type mockBlogRepository struct {
	createFn func(ctx context.Context, blog *model.Blog, postsIncrement int) error

	createCalls int
}

func (m *mockBlogRepository) Create(ctx context.Context, blog *model.Blog, postsIncrement int) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, blog, postsIncrement)
	}
	return nil
}

func (m *mockBlogRepository) GetByBlogID(ctx context.Context, blogID string) (*model.Blog, error) {
	return nil, model.ErrBlogNotFound
}

func newPostHandler(repo *mockBlogRepository) *PostHandler {
	return NewPostHandler(service.NewPostService(repo), nil)
}

func createPostRequest(t *testing.T, body interface{}, userID *int64) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/post/create-post", bytes.NewReader(payload))
	if userID != nil {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, *userID)
		req = req.WithContext(ctx)
	}
	return req
}

func TestPostHandler_CreatePost_DraftWithOnlyTitle(t *testing.T) {
	repo := &mockBlogRepository{}
	h := newPostHandler(repo)

	userID := int64(7)
	req := createPostRequest(t, model.CreatePostRequest{Title: "my title", Draft: true}, &userID)
	rec := httptest.NewRecorder()

	h.CreatePost(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res model.CreatePostResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// id is the slugified title plus a non-empty random suffix
	if !strings.HasPrefix(res.ID, "my-title-") {
		t.Errorf("id = %q, want prefix %q", res.ID, "my-title-")
	}
	if len(res.ID) <= len("my-title-") {
		t.Error("random suffix must be non-empty")
	}
}

func TestPostHandler_CreatePost_MissingAuthContext(t *testing.T) {
	repo := &mockBlogRepository{}
	h := newPostHandler(repo)

	req := createPostRequest(t, model.CreatePostRequest{Title: "my title", Draft: true}, nil)
	rec := httptest.NewRecorder()

	h.CreatePost(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if repo.createCalls != 0 {
		t.Error("Create should not be called without an authenticated user")
	}
}

func TestPostHandler_CreatePost_PublishedWithoutTags(t *testing.T) {
	repo := &mockBlogRepository{}
	h := newPostHandler(repo)

	userID := int64(7)
	req := createPostRequest(t, model.CreatePostRequest{
		Title:   "my title",
		Banner:  "https://example.com/banner.jpeg",
		Content: model.BlogContent{Blocks: []json.RawMessage{json.RawMessage(`{}`)}},
		Desc:    "desc",
		Tags:    nil,
		Draft:   false,
	}, &userID)
	rec := httptest.NewRecorder()

	h.CreatePost(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body: %s)", rec.Code, rec.Body.String())
	}
	if repo.createCalls != 0 {
		t.Error("Create should not be called for an invalid publish")
	}
}

func TestPostHandler_CreatePost_StoreFailure(t *testing.T) {
	repo := &mockBlogRepository{
		createFn: func(ctx context.Context, blog *model.Blog, postsIncrement int) error {
			return context.DeadlineExceeded
		},
	}
	h := newPostHandler(repo)

	userID := int64(7)
	req := createPostRequest(t, model.CreatePostRequest{Title: "my title", Draft: true}, &userID)
	rec := httptest.NewRecorder()

	h.CreatePost(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
