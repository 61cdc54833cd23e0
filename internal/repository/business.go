package repository

import (
	"context"
	"errors"
	"time"

	"github.com/weconnect/weconnect/internal/model"
)

// Common errors for business store operations.
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrNotOwner         = errors.New("business owned by another user")
)

// CreateBusiness appends a new business record with an empty review
// sequence and returns a value copy of it.
func (s *Store) CreateBusiness(ctx context.Context, business model.Business) *model.Business {
	s.mu.Lock()
	defer s.mu.Unlock()

	business.Reviews = []model.Review{}
	s.businesses = append(s.businesses, business)

	return s.businesses[len(s.businesses)-1].View(true)
}

// ListBusinesses returns value copies of every business in insertion
// order, with reviews omitted.
func (s *Store) ListBusinesses(ctx context.Context) []*model.Business {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]*model.Business, 0, len(s.businesses))
	for i := range s.businesses {
		views = append(views, s.businesses[i].View(false))
	}

	return views
}

// GetBusiness returns a value copy of the business with the given id,
// with reviews omitted.
func (s *Store) GetBusiness(ctx context.Context, id string) (*model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID == id {
			return s.businesses[i].View(false), nil
		}
	}

	return nil, ErrBusinessNotFound
}

// UpdateBusiness applies a partial update to the business with the
// given id. Only the recorded owner may mutate the record; any other
// caller gets ErrNotOwner and the record is left unchanged. Nil fields
// in the update are left untouched. The whole operation runs under one
// lock so the update is applied atomically.
func (s *Store) UpdateBusiness(ctx context.Context, ownerID, id string, update model.BusinessUpdate) (*model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID != id {
			continue
		}
		if s.businesses[i].OwnerID != ownerID {
			return nil, ErrNotOwner
		}

		b := &s.businesses[i]
		if update.Name != nil {
			b.Name = *update.Name
		}
		if update.Location != nil {
			b.Location = *update.Location
		}
		if update.Category != nil {
			b.Category = *update.Category
		}
		if update.Description != nil {
			b.Description = *update.Description
		}
		b.UpdatedAt = time.Now().UTC()

		return b.View(true), nil
	}

	return nil, ErrBusinessNotFound
}

// DeleteBusiness removes the business with the given id together with
// its reviews. Deletion is identifier-only: ownership is not checked
// at this layer.
func (s *Store) DeleteBusiness(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID == id {
			s.businesses = append(s.businesses[:i], s.businesses[i+1:]...)
			return nil
		}
	}

	return ErrBusinessNotFound
}

// AddReview appends a review to the business with the given id and
// returns a copy of the business including the updated review
// sequence. Reviews keep their append order.
func (s *Store) AddReview(ctx context.Context, businessID string, review model.Review) (*model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID == businessID {
			s.businesses[i].Reviews = append(s.businesses[i].Reviews, review)
			return s.businesses[i].View(true), nil
		}
	}

	return nil, ErrBusinessNotFound
}

// ListReviews returns an order-preserved copy of the review sequence
// for the business with the given id.
func (s *Store) ListReviews(ctx context.Context, businessID string) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.businesses {
		if s.businesses[i].ID == businessID {
			reviews := make([]model.Review, len(s.businesses[i].Reviews))
			copy(reviews, s.businesses[i].Reviews)
			return reviews, nil
		}
	}

	return nil, ErrBusinessNotFound
}
