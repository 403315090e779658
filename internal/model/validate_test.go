package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateSignUp(t *testing.T) {
	valid := SignUpRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@x.com",
		Password: "Passw0rd",
	}

	tests := []struct {
		name    string
		mutate  func(r *SignUpRequest)
		wantErr string
	}{
		{
			name:    "valid request",
			mutate:  func(r *SignUpRequest) {},
			wantErr: "",
		},
		{
			name:    "full name too short",
			mutate:  func(r *SignUpRequest) { r.FullName = "Al" },
			wantErr: "Full name must be at least 3 characters long",
		},
		{
			name:    "empty email",
			mutate:  func(r *SignUpRequest) { r.Email = "" },
			wantErr: "Please enter an email",
		},
		{
			name:    "email without domain",
			mutate:  func(r *SignUpRequest) { r.Email = "ada@" },
			wantErr: "Email is invalid",
		},
		{
			name:    "email without at sign",
			mutate:  func(r *SignUpRequest) { r.Email = "ada.x.com" },
			wantErr: "Email is invalid",
		},
		{
			name:    "password too short",
			mutate:  func(r *SignUpRequest) { r.Password = "Pw0rd" },
			wantErr: "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter",
		},
		{
			name:    "password too long",
			mutate:  func(r *SignUpRequest) { r.Password = "Abcdefghijklmnopqrs0t" },
			wantErr: "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter",
		},
		{
			name:    "password without digit",
			mutate:  func(r *SignUpRequest) { r.Password = "Password" },
			wantErr: "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter",
		},
		{
			name:    "password without uppercase",
			mutate:  func(r *SignUpRequest) { r.Password = "passw0rd" },
			wantErr: "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter",
		},
		{
			name:    "password without lowercase",
			mutate:  func(r *SignUpRequest) { r.Password = "PASSW0RD" },
			wantErr: "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateSignUp(&req)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if validationErr.Message != tt.wantErr {
				t.Errorf("message = %q, want %q", validationErr.Message, tt.wantErr)
			}
		})
	}
}

func TestValidateCreatePost(t *testing.T) {
	block := json.RawMessage(`{"type":"paragraph","data":{"text":"hello"}}`)

	published := CreatePostRequest{
		Title:   "My Title",
		Banner:  "https://example.com/banner.jpeg",
		Content: BlogContent{Blocks: []json.RawMessage{block}},
		Desc:    "A description",
		Tags:    []string{"go", "testing"},
		Draft:   false,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreatePostRequest)
		wantErr bool
	}{
		{
			name:    "valid published post",
			mutate:  func(r *CreatePostRequest) {},
			wantErr: false,
		},
		{
			name:    "missing title always fails",
			mutate:  func(r *CreatePostRequest) { r.Title = "" },
			wantErr: true,
		},
		{
			name: "draft with only a title passes",
			mutate: func(r *CreatePostRequest) {
				*r = CreatePostRequest{Title: "My Title", Draft: true}
			},
			wantErr: false,
		},
		{
			name: "draft without title still fails",
			mutate: func(r *CreatePostRequest) {
				*r = CreatePostRequest{Draft: true}
			},
			wantErr: true,
		},
		{
			name:    "published without banner",
			mutate:  func(r *CreatePostRequest) { r.Banner = "" },
			wantErr: true,
		},
		{
			name:    "published without description",
			mutate:  func(r *CreatePostRequest) { r.Desc = "" },
			wantErr: true,
		},
		{
			name: "published with oversized description",
			mutate: func(r *CreatePostRequest) {
				long := make([]byte, MaxBlogDescLength+1)
				for i := range long {
					long[i] = 'a'
				}
				r.Desc = string(long)
			},
			wantErr: true,
		},
		{
			name:    "published without content blocks",
			mutate:  func(r *CreatePostRequest) { r.Content = BlogContent{} },
			wantErr: true,
		},
		{
			name:    "published with empty tag list",
			mutate:  func(r *CreatePostRequest) { r.Tags = nil },
			wantErr: true,
		},
		{
			name: "published with too many tags",
			mutate: func(r *CreatePostRequest) {
				tags := make([]string, MaxBlogTags+1)
				for i := range tags {
					tags[i] = "tag"
				}
				r.Tags = tags
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := published
			tt.mutate(&req)

			err := ValidateCreatePost(&req)

			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("error = %v, want *ValidationError", err)
				}
			}
		})
	}
}

func TestSlugifyTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Title", "My-Title"},
		{"Hello, World!", "Hello-World"},
		{"  spaced   out  ", "spaced-out"},
		{"already-hyphenated", "already-hyphenated"},
		{"100% Go", "100-Go"},
	}

	for _, tt := range tests {
		if got := SlugifyTitle(tt.title); got != tt.want {
			t.Errorf("SlugifyTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Go", "TESTING", "web"})
	want := []string{"go", "testing", "web"}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
