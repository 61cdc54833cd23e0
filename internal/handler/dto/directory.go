// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/weconnect/weconnect/internal/model"
)

// RegisterRequest represents the request body for registering a user.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ResetPasswordRequest represents the request body for a password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// CreateBusinessRequest represents the request body for creating a business.
type CreateBusinessRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// UpdateBusinessRequest represents a partial business update.
// Absent fields are left untouched.
type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddReviewRequest represents the request body for adding a review.
type AddReviewRequest struct {
	Text string `json:"text"`
}

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BusinessResponse represents a business in API responses, including
// its review sequence.
type BusinessResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	Name        string           `json:"name"`
	Location    string           `json:"location"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Reviews     []ReviewResponse `json:"reviews"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BusinessSummary represents a business in listings, reviews omitted.
type BusinessSummary struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessEnvelope wraps a single business.
type BusinessEnvelope struct {
	Business BusinessResponse `json:"business"`
}

// BusinessSummaryEnvelope wraps a single business summary.
type BusinessSummaryEnvelope struct {
	Business BusinessSummary `json:"business"`
}

// BusinessListResponse wraps a listing of businesses.
type BusinessListResponse struct {
	Businesses []BusinessSummary `json:"businesses"`
}

// ReviewListResponse wraps the review sequence of a business.
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// MessageResponse carries a human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToReviewResponses converts review models to DTOs.
func ToReviewResponses(reviews []model.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewResponse{ID: review.ID, Text: review.Text}
	}
	return out
}

// ToBusinessResponse converts a Business model, review sequence
// included, to a BusinessResponse DTO.
func ToBusinessResponse(business *model.Business) BusinessResponse {
	return BusinessResponse{
		ID:          business.ID,
		OwnerID:     business.OwnerID,
		Name:        business.Name,
		Location:    business.Location,
		Category:    business.Category,
		Description: business.Description,
		Reviews:     ToReviewResponses(business.Reviews),
		CreatedAt:   business.CreatedAt,
		UpdatedAt:   business.UpdatedAt,
	}
}

// ToBusinessSummary converts a Business model to a summary DTO.
func ToBusinessSummary(business *model.Business) BusinessSummary {
	return BusinessSummary{
		ID:          business.ID,
		OwnerID:     business.OwnerID,
		Name:        business.Name,
		Location:    business.Location,
		Category:    business.Category,
		Description: business.Description,
		CreatedAt:   business.CreatedAt,
		UpdatedAt:   business.UpdatedAt,
	}
}

// ToBusinessListResponse converts a slice of Business models to a
// listing DTO.
func ToBusinessListResponse(businesses []*model.Business) BusinessListResponse {
	summaries := make([]BusinessSummary, len(businesses))
	for i, business := range businesses {
		summaries[i] = ToBusinessSummary(business)
	}
	return BusinessListResponse{Businesses: summaries}
}
