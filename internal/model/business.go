package model

import "time"

// Review is a single piece of feedback attached to a business.
// Its lifetime is bound to the owning business: deleting the business
// discards its reviews.
type Review struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Business represents a listed business owned by a user.
// ID and OwnerID are immutable after creation. The four display fields
// change only through owner-checked updates, and Reviews is append-only.
type Business struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Reviews     []Review  `json:"reviews,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessUpdate describes a partial update to a business.
// Nil fields are left untouched.
type BusinessUpdate struct {
	Name        *string
	Location    *string
	Category    *string
	Description *string
}

// View returns a value copy of the business that is safe to hand to
// callers: mutating the copy cannot corrupt the stored record.
// When withReviews is false the review sequence is omitted entirely.
func (b *Business) View(withReviews bool) *Business {
	view := *b
	view.Reviews = nil
	if withReviews {
		view.Reviews = make([]Review, len(b.Reviews))
		copy(view.Reviews, b.Reviews)
	}
	return &view
}
