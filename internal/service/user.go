package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eblog_backend/internal/model"
	"eblog_backend/internal/repository"
)

// bcryptCost matches the fixed 10-round cost the platform has always used.
const bcryptCost = 10

// UserService handles signup and password signin.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// SignUp validates the request, hashes the password, derives a unique
// username and inserts the user. A duplicate email surfaces as
// model.ErrEmailExists from the repository.
func (s *UserService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.User, error) {
	if err := model.ValidateSignUp(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	username, err := s.DeriveUsername(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to derive username: %w", err)
	}

	hashed := string(hashedPassword)
	user := &model.User{
		FullName:       req.FullName,
		Email:          req.Email,
		Username:       username,
		PasswordHashed: &hashed,
		ProfileImg:     model.DefaultProfileImg,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn authenticates a user by email and password. A federated-only
// account rejects password signin with model.ErrGoogleAccount.
func (s *UserService) SignIn(ctx context.Context, req *model.SignInRequest) (*model.User, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if user.GoogleAuth || user.PasswordHashed == nil {
		return nil, model.ErrGoogleAccount
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHashed), []byte(req.Password))
	if err != nil {
		return nil, model.ErrIncorrectPassword
	}

	return user, nil
}

// DeriveUsername takes the local-part of the email and appends a 4-character
// random suffix if that name is taken. The check and the later insert are not
// one atomic step: two concurrent signups with the same local-part can both
// see "not taken" and the loser fails on the username unique index.
func (s *UserService) DeriveUsername(ctx context.Context, email string) (string, error) {
	username := strings.Split(email, "@")[0]

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if taken {
		username += randomID(UsernameSuffixLength)
		log.Printf("[UserService] Username collision, derived %s", username)
	}

	return username, nil
}
