package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/weconnect/weconnect/internal/auth"
	"github.com/weconnect/weconnect/internal/handler/dto"
	"github.com/weconnect/weconnect/internal/service"
)

// BusinessHandler handles HTTP requests for business and review
// operations.
type BusinessHandler struct {
	svc    *service.Directory
	logger *slog.Logger
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(svc *service.Directory, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/v1/businesses.
// The owner is the authenticated user, never taken from the body.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.CreateBusinessInput{
		ID:          ulid.Make().String(),
		OwnerID:     auth.UserIDFromContext(r.Context()),
		Name:        req.Name,
		Location:    req.Location,
		Category:    req.Category,
		Description: req.Description,
	}

	business, err := h.svc.CreateBusiness(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("business_created",
		"business_id", business.ID,
		"owner_id", business.OwnerID,
	)

	writeJSON(w, http.StatusCreated, dto.BusinessEnvelope{Business: dto.ToBusinessResponse(business)})
}

// List handles GET /api/v1/businesses.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	businesses := h.svc.ListBusinesses(r.Context())
	writeJSON(w, http.StatusOK, dto.ToBusinessListResponse(businesses))
}

// Get handles GET /api/v1/businesses/{businessID}.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "businessID")

	business, err := h.svc.GetBusiness(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BusinessSummaryEnvelope{Business: dto.ToBusinessSummary(business)})
}

// Update handles PUT /api/v1/businesses/{businessID}.
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "businessID")

	var req dto.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.UpdateBusinessInput{
		ID:          id,
		OwnerID:     auth.UserIDFromContext(r.Context()),
		Name:        req.Name,
		Location:    req.Location,
		Category:    req.Category,
		Description: req.Description,
	}

	business, err := h.svc.UpdateBusiness(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("business_updated", "business_id", business.ID)

	writeJSON(w, http.StatusOK, dto.BusinessEnvelope{Business: dto.ToBusinessResponse(business)})
}

// Delete handles DELETE /api/v1/businesses/{businessID}.
func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "businessID")

	if err := h.svc.DeleteBusiness(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("business_deleted", "business_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// AddReview handles POST /api/v1/businesses/{businessID}/reviews.
func (h *BusinessHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "businessID")

	var req dto.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	reviewID := ulid.Make().String()

	business, err := h.svc.AddReview(r.Context(), id, reviewID, req.Text)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("review_added",
		"business_id", id,
		"review_id", reviewID,
	)

	writeJSON(w, http.StatusCreated, dto.BusinessEnvelope{Business: dto.ToBusinessResponse(business)})
}

// ListReviews handles GET /api/v1/businesses/{businessID}/reviews.
func (h *BusinessHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "businessID")

	reviews, err := h.svc.ListReviews(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReviewListResponse{Reviews: dto.ToReviewResponses(reviews)})
}

// handleServiceError maps service errors to HTTP responses.
func (h *BusinessHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		writeError(w, http.StatusBadRequest, "MISSING_FIELD", "Name, location, category and description are required")
	case errors.Is(err, service.ErrBusinessNotFound):
		writeError(w, http.StatusNotFound, "BUSINESS_NOT_FOUND", "Business not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "NOT_OWNER", "Only the owner can modify this business")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
