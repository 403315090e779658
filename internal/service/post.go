package service

import (
	"context"
	"log"

	"eblog_backend/internal/model"
	"eblog_backend/internal/repository"
)

// PostService handles blog post creation.
type PostService struct {
	blogRepo repository.BlogRepository
}

func NewPostService(blogRepo repository.BlogRepository) *PostService {
	return &PostService{blogRepo: blogRepo}
}

// Create validates the request, derives the composite blog identifier and
// persists the blog. Drafts skip publish validation and don't count toward
// the author's total_posts.
func (s *PostService) Create(ctx context.Context, authorID int64, req *model.CreatePostRequest) (*model.Blog, error) {
	if err := model.ValidateCreatePost(req); err != nil {
		return nil, err
	}

	blogID := model.SlugifyTitle(req.Title) + "-" + randomID(BlogIDSuffixLength)

	blog := &model.Blog{
		BlogID:      blogID,
		Title:       req.Title,
		Banner:      req.Banner,
		Description: req.Desc,
		Content:     req.Content,
		Tags:        model.NormalizeTags(req.Tags),
		Draft:       req.Draft,
		AuthorID:    authorID,
	}

	postsIncrement := 1
	if req.Draft {
		postsIncrement = 0
	}

	if err := s.blogRepo.Create(ctx, blog, postsIncrement); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d created blog %s (draft=%t)", authorID, blog.BlogID, blog.Draft)
	return blog, nil
}
