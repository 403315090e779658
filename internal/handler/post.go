package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"eblog_backend/internal/httputil"
	"eblog_backend/internal/model"
	"eblog_backend/internal/service"
	"eblog_backend/internal/transport/http/middleware"
)

type PostHandler struct {
	postService  *service.PostService
	mediaService *service.MediaService
}

func NewPostHandler(postService *service.PostService, mediaService *service.MediaService) *PostHandler {
	return &PostHandler{
		postService:  postService,
		mediaService: mediaService,
	}
}

// GetImageUploadURL handles GET /api/v1/post/image-upload-url
// Returns a pre-signed PUT URL for uploading a banner image directly to S3.
func (h *PostHandler) GetImageUploadURL(w http.ResponseWriter, r *http.Request) {
	uploadURL, err := h.mediaService.GenerateUploadURL(r.Context())
	if err != nil {
		log.Printf("[ERROR] Image upload url handler: err=%v", err)
		httputil.WriteInternalError(w, err.Error())
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.UploadURLResponse{UploadURL: uploadURL})
}

// CreatePost handles POST /api/v1/post/create-post
// Creates a blog post (draft or published) for the authenticated user.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	blog, err := h.postService.Create(r.Context(), userID, &req)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			httputil.WriteValidationError(w, validationErr.Message)
			return
		}
		log.Printf("[ERROR] Create post handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, err.Error())
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.CreatePostResponse{ID: blog.BlogID})
}
