package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/weconnect/weconnect/internal/auth"
	"github.com/weconnect/weconnect/internal/cache"
	"github.com/weconnect/weconnect/internal/handler/dto"
	"github.com/weconnect/weconnect/internal/service"
)

// AuthHandler handles HTTP requests for registration and sessions.
type AuthHandler struct {
	svc    *service.Directory
	tokens *auth.TokenManager
	cache  *cache.Cache
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. The cache may be nil, in
// which case logout does not revoke tokens.
func NewAuthHandler(svc *service.Directory, tokens *auth.TokenManager, cacheClient *cache.Cache, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		tokens: tokens,
		cache:  cacheClient,
		logger: logger,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.RegisterInput{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	if err := h.svc.Register(r.Context(), input); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_registered", "user_id", input.ID)

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Successfully created user"})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	userID, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		h.logger.Error("token_issue_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("user_logged_in", "user_id", userID)

	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token})
}

// Logout handles POST /api/v1/auth/logout.
// Revokes the presented token until it would have expired.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.AuthFromContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if h.cache != nil {
		ttl := time.Until(authCtx.ExpiresAt)
		if err := h.cache.RevokeToken(r.Context(), authCtx.TokenID, ttl); err != nil {
			h.logger.Error("token_revocation_failed",
				"error", err,
				"user_id", authCtx.UserID,
			)
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
			return
		}
	}

	h.logger.Info("user_logged_out", "user_id", authCtx.UserID)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

// ResetPassword handles POST /api/v1/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "MISSING_FIELD", "Supply your password and a new password")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Email, req.Password, req.NewPassword); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("password_reset", "email", req.Email)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Successfully updated password"})
}

// handleServiceError maps service errors to HTTP responses.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		writeError(w, http.StatusBadRequest, "MISSING_FIELD", "Email and password are required")
	case errors.Is(err, service.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "ALREADY_REGISTERED", "You're already registered. Try signing in.")
	case errors.Is(err, service.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
