package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eblog_backend/internal/config"
	"eblog_backend/internal/model"
)

// TokenService issues signed session tokens. There is no refresh mechanism;
// a token is valid for the configured lifetime and then the client signs in
// again.
type TokenService struct {
	config *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{config: cfg}
}

// IssueSessionToken signs an {"id": userID} claims payload with the server
// secret, expiring after AccessTokenMaxAge seconds.
func (s *TokenService) IssueSessionToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// FormatAuthResponse builds the token + public profile shape every auth
// endpoint returns.
func (s *TokenService) FormatAuthResponse(user *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.IssueSessionToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		AccessToken: accessToken,
		ProfileImg:  user.ProfileImg,
		Username:    user.Username,
		FullName:    user.FullName,
	}, nil
}
