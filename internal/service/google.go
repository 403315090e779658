package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"eblog_backend/internal/config"
	"eblog_backend/internal/model"
	"eblog_backend/internal/repository"
)

// GoogleIdentity is the subset of the provider's decoded ID token the
// signup-on-first-use flow needs.
type GoogleIdentity struct {
	Email   string
	Name    string
	Picture string
}

// IdentityVerifier verifies an externally-issued ID token. Satisfied by
// FirebaseVerifier in production and by test doubles in unit tests.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// FirebaseVerifier verifies Google ID tokens through the Firebase Admin SDK.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds the Firebase app from service-account
// credentials supplied via environment.
//
// The private key in .env has literal "\n" strings; the SDK expects actual
// newlines in the PEM key.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (*FirebaseVerifier, error) {
	privateKey := strings.ReplaceAll(cfg.FirebasePrivateKey, "\\n", "\n")

	credsJSON := fmt.Sprintf(`{
		"type": "service_account",
		"project_id": %q,
		"private_key": %q,
		"client_email": %q,
		"token_uri": "https://oauth2.googleapis.com/token"
	}`, cfg.FirebaseProjectID, privateKey, cfg.FirebaseClientEmail)

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get auth client: %w", err)
	}

	log.Printf("[GoogleAuth] Initialized for project: %s", cfg.FirebaseProjectID)
	return &FirebaseVerifier{client: client}, nil
}

// Verify checks the ID token and extracts email, name and picture claims.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	identity := &GoogleIdentity{}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}

// GoogleAuthService handles federated signin with signup-on-first-use.
type GoogleAuthService struct {
	verifier IdentityVerifier
	users    *UserService
	repo     repository.UserRepository
}

func NewGoogleAuthService(verifier IdentityVerifier, users *UserService, repo repository.UserRepository) *GoogleAuthService {
	return &GoogleAuthService{
		verifier: verifier,
		users:    users,
		repo:     repo,
	}
}

// Authenticate verifies the provider token and returns the matching local
// user, creating a federated account on first use. An existing
// password-based account with the same email is rejected with
// model.ErrNotGoogleAccount and no new user is created.
func (s *GoogleAuthService) Authenticate(ctx context.Context, idToken string) (*model.User, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	// The provider hands out a 96px thumbnail; swap in the larger rendition.
	picture := strings.Replace(identity.Picture, "s96-c", "s384-c", 1)

	user, err := s.repo.GetByEmail(ctx, identity.Email)
	if err == nil {
		if !user.GoogleAuth {
			return nil, model.ErrNotGoogleAccount
		}
		return user, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	username, err := s.users.DeriveUsername(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to derive username: %w", err)
	}

	user = &model.User{
		FullName:   identity.Name,
		Email:      identity.Email,
		Username:   username,
		ProfileImg: picture,
		GoogleAuth: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("[GoogleAuth] Created federated user %s", user.Username)
	return user, nil
}
