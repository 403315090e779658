package model

import (
	"regexp"
	"strings"
	"unicode"
)

// emailRegex requires an @ and a dotted domain, matching what the signup form
// enforces client-side.
var emailRegex = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// ValidateSignUp checks the signup fields in order: full name, email, then
// password. Returns a *ValidationError for the first failing field.
func ValidateSignUp(req *SignUpRequest) error {
	if len(req.FullName) < 3 {
		return NewValidationError("Full name must be at least 3 characters long")
	}

	if len(req.Email) == 0 {
		return NewValidationError("Please enter an email")
	}

	if !emailRegex.MatchString(req.Email) {
		return NewValidationError("Email is invalid")
	}

	if !isValidPassword(req.Password) {
		return NewValidationError("Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter")
	}

	return nil
}

// isValidPassword checks 6-20 characters with at least one digit, one
// lowercase and one uppercase letter. Spelled out with rune classes since Go
// regexp has no lookahead.
func isValidPassword(password string) bool {
	if len(password) < 6 || len(password) > 20 {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	return hasDigit && hasLower && hasUpper
}

// ValidateCreatePost checks the title always, and the publish bounds only
// when the post is not a draft.
func ValidateCreatePost(req *CreatePostRequest) error {
	if len(req.Title) == 0 {
		return NewValidationError("Please provide a title")
	}

	if req.Draft {
		return nil
	}

	if len(req.Banner) == 0 {
		return NewValidationError("Please provide a post banner")
	}

	if len(req.Desc) == 0 || len(req.Desc) > MaxBlogDescLength {
		return NewValidationError("You must provide a description not more than 200 characters.")
	}

	if len(req.Content.Blocks) == 0 {
		return NewValidationError("Please provide post content to publish it.")
	}

	if len(req.Tags) == 0 || len(req.Tags) > MaxBlogTags {
		return NewValidationError("Please provide post tags not more than 10.")
	}

	return nil
}

// NormalizeTags lower-cases every tag.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, len(tags))
	for i, tag := range tags {
		normalized[i] = strings.ToLower(tag)
	}
	return normalized
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// SlugifyTitle strips non-alphanumerics, collapses runs to hyphens and trims.
// The caller appends a random suffix to make the blog_id unique.
func SlugifyTitle(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(title, " ")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
