package storage

import (
	"context"

	"yelpcamp/pkg/domain"
)

// ReviewUpdates describes the optional fields of a review that can be changed.
type ReviewUpdates struct {
	Rating *int
	Text   *string
}

// ReviewStorage defines persistence operations for reviews.
type ReviewStorage interface {
	// StoreReview inserts a review. It returns ErrDuplicate when the author has
	// already reviewed the campground.
	StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	// ReviewByID fetches a review by its ID.
	ReviewByID(ctx context.Context, ID domain.ReviewID) (*domain.Review, error)
	// ReviewByAuthor fetches the review the author wrote for the campground.
	ReviewByAuthor(ctx context.Context,
		campgroundID domain.CampgroundID,
		authorID domain.UserID) (*domain.Review, error)
	// CampgroundReviews returns all reviews of a campground, newest first.
	CampgroundReviews(ctx context.Context, campgroundID domain.CampgroundID) ([]domain.Review, error)
	// UpdateReview applies updates and returns the updated row, or nil.
	UpdateReview(ctx context.Context, ID domain.ReviewID, updates ReviewUpdates) (*domain.Review, error)
	// DeleteReview deletes the review, returning the deleted row or nil.
	DeleteReview(ctx context.Context, ID domain.ReviewID) (*domain.Review, error)
}
