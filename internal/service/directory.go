// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weconnect/weconnect/internal/auth"
	"github.com/weconnect/weconnect/internal/metrics"
	"github.com/weconnect/weconnect/internal/model"
	"github.com/weconnect/weconnect/internal/repository"
)

// Service errors.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrAlreadyRegistered = errors.New("email already registered")
	ErrNotAuthenticated  = errors.New("invalid credentials")
	ErrBusinessNotFound  = errors.New("business not found")
	ErrNotOwner          = errors.New("business owned by another user")
	ErrInvalidInput      = errors.New("invalid input")
)

// Directory composes the user directory, business catalog and review
// ledger into the operations the HTTP layer calls. Every operation is
// synchronous and deterministic given the current store contents;
// every failure is a typed error for the caller to map.
type Directory struct {
	store   *repository.Store
	metrics metrics.Recorder
}

// NewDirectory creates a Directory over the given store.
func NewDirectory(store *repository.Store, recorder metrics.Recorder) *Directory {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Directory{
		store:   store,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering a user. The id is
// generated by the caller.
type RegisterInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new user with a freshly hashed password.
// Fails with ErrMissingField when email or password is empty and with
// ErrAlreadyRegistered when the email is already taken.
func (d *Directory) Register(ctx context.Context, input RegisterInput) error {
	if input.Email == "" || input.Password == "" {
		return ErrMissingField
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           input.ID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := d.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return ErrAlreadyRegistered
		}
		return fmt.Errorf("create user: %w", err)
	}

	d.metrics.IncUserRegistered()
	return nil
}

// Authenticate resolves an email/password pair to a user id.
// Unknown email and wrong password both return ErrNotAuthenticated; a
// malformed stored hash surfaces as ErrInvalidInput.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := d.store.GetUserByEmail(ctx, email)
	if err != nil {
		d.metrics.IncLoginFailed()
		return "", ErrNotAuthenticated
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		d.metrics.IncLoginFailed()
		return "", ErrInvalidInput
	}
	if !match {
		d.metrics.IncLoginFailed()
		return "", ErrNotAuthenticated
	}

	d.metrics.IncLoginSucceeded()
	return user.ID, nil
}

// ResetPassword replaces the user's password hash after verifying the
// old password. The new hash is computed from the newPassword argument
// and checked against it before it is stored, so the record ends up
// either fully updated or fully unchanged.
func (d *Directory) ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	user, err := d.store.GetUserByEmail(ctx, email)
	if err != nil {
		return ErrNotAuthenticated
	}

	match, err := auth.VerifyPassword(oldPassword, user.PasswordHash)
	if err != nil {
		return ErrInvalidInput
	}
	if !match {
		return ErrNotAuthenticated
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// The fresh hash must validate against the new password before it
	// replaces the stored one.
	ok, err := auth.VerifyPassword(newPassword, hash)
	if err != nil || !ok {
		return ErrNotAuthenticated
	}

	if err := d.store.UpdateUserPassword(ctx, email, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	d.metrics.IncPasswordReset()
	return nil
}

// CreateBusinessInput defines input for creating a business. The id is
// generated by the caller; the owner id comes from the verified
// identity of the acting user.
type CreateBusinessInput struct {
	ID          string
	OwnerID     string
	Name        string
	Location    string
	Category    string
	Description string
}

// CreateBusiness adds a business to the catalog with an empty review
// sequence. All four display fields are required.
func (d *Directory) CreateBusiness(ctx context.Context, input CreateBusinessInput) (*model.Business, error) {
	if input.Name == "" || input.Location == "" || input.Category == "" || input.Description == "" {
		return nil, ErrMissingField
	}

	now := time.Now().UTC()
	business := model.Business{
		ID:          input.ID,
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Location:    input.Location,
		Category:    input.Category,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	view := d.store.CreateBusiness(ctx, business)
	d.metrics.IncBusinessCreated()
	return view, nil
}

// ListBusinesses returns every business in catalog order, reviews
// omitted.
func (d *Directory) ListBusinesses(ctx context.Context) []*model.Business {
	return d.store.ListBusinesses(ctx)
}

// GetBusiness returns the business with the given id, reviews omitted.
func (d *Directory) GetBusiness(ctx context.Context, id string) (*model.Business, error) {
	business, err := d.store.GetBusiness(ctx, id)
	if err != nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

// UpdateBusinessInput defines a partial update to a business. Nil
// fields are left untouched.
type UpdateBusinessInput struct {
	ID          string
	OwnerID     string
	Name        *string
	Location    *string
	Category    *string
	Description *string
}

// UpdateBusiness applies a partial update to a business owned by the
// acting user. A caller other than the owner gets ErrNotOwner and the
// record stays unchanged.
func (d *Directory) UpdateBusiness(ctx context.Context, input UpdateBusinessInput) (*model.Business, error) {
	update := model.BusinessUpdate{
		Name:        input.Name,
		Location:    input.Location,
		Category:    input.Category,
		Description: input.Description,
	}

	view, err := d.store.UpdateBusiness(ctx, input.OwnerID, input.ID, update)
	switch {
	case errors.Is(err, repository.ErrBusinessNotFound):
		return nil, ErrBusinessNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return nil, ErrNotOwner
	case err != nil:
		return nil, fmt.Errorf("update business: %w", err)
	}

	d.metrics.IncBusinessUpdated()
	return view, nil
}

// DeleteBusiness removes a business and its reviews by id. Ownership
// is deliberately not required for deletion at this layer.
func (d *Directory) DeleteBusiness(ctx context.Context, id string) error {
	if err := d.store.DeleteBusiness(ctx, id); err != nil {
		return ErrBusinessNotFound
	}

	d.metrics.IncBusinessDeleted()
	return nil
}

// AddReview appends a review to a business and returns the business
// including the updated review sequence. The review id is generated by
// the caller.
func (d *Directory) AddReview(ctx context.Context, businessID, reviewID, text string) (*model.Business, error) {
	review := model.Review{
		ID:   reviewID,
		Text: text,
	}

	view, err := d.store.AddReview(ctx, businessID, review)
	if err != nil {
		return nil, ErrBusinessNotFound
	}

	d.metrics.IncReviewAdded()
	return view, nil
}

// ListReviews returns the full review sequence for a business in
// append order.
func (d *Directory) ListReviews(ctx context.Context, businessID string) ([]model.Review, error) {
	reviews, err := d.store.ListReviews(ctx, businessID)
	if err != nil {
		return nil, ErrBusinessNotFound
	}
	return reviews, nil
}
