package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"eblog_backend/internal/httputil"
	"eblog_backend/internal/model"
	"eblog_backend/internal/service"
)

// AuthHandler groups auth-related HTTP endpoints and their dependencies.
type AuthHandler struct {
	userService   *service.UserService
	tokenService  *service.TokenService
	googleService *service.GoogleAuthService
}

// NewAuthHandler wires dependencies for authentication endpoints.
func NewAuthHandler(userService *service.UserService, tokenService *service.TokenService, googleService *service.GoogleAuthService) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		tokenService:  tokenService,
		googleService: googleService,
	}
}

// SignUp handles user registration
// POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.SignUp(r.Context(), &req)
	if err != nil {
		var validationErr *model.ValidationError
		switch {
		case errors.As(err, &validationErr):
			httputil.WriteValidationError(w, validationErr.Message)
		case errors.Is(err, model.ErrEmailExists):
			httputil.WriteInternalError(w, fmt.Sprintf("Email '%s' already exists", req.Email))
		default:
			log.Printf("[ERROR] Sign up handler: email=%s err=%v", req.Email, err)
			httputil.WriteInternalError(w, err.Error())
		}
		return
	}

	h.respondWithToken(w, user)
}

// SignIn handles password login
// POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.SignIn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, fmt.Sprintf("The email '%s' was not found.", req.Email))
		case errors.Is(err, model.ErrGoogleAccount):
			httputil.WriteForbidden(w, "Account was created with google. Please try logging in with google.")
		case errors.Is(err, model.ErrIncorrectPassword):
			httputil.WriteForbidden(w, "Incorrect password")
		default:
			log.Printf("[ERROR] Sign in handler: email=%s err=%v", req.Email, err)
			httputil.WriteInternalError(w, err.Error())
		}
		return
	}

	h.respondWithToken(w, user)
}

// GoogleAuth handles federated signin with signup-on-first-use
// POST /api/v1/auth/google-auth
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req model.GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.googleService.Authenticate(r.Context(), req.AccessToken)
	if err != nil {
		if errors.Is(err, model.ErrNotGoogleAccount) {
			httputil.WriteBadRequest(w, "This user was signed up without google. Please log in with password to access your account.")
			return
		}
		log.Printf("[ERROR] Google auth handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to authenticate you with google. Please try again with another google account.")
		return
	}

	h.respondWithToken(w, user)
}

// respondWithToken issues the session token and writes the shared
// token+profile response.
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *model.User) {
	response, err := h.tokenService.FormatAuthResponse(user)
	if err != nil {
		log.Printf("[ERROR] Issue session token: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Failed to issue session token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, response)
}
