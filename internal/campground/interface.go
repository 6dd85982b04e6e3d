package campground

import (
	"context"

	"yelpcamp/pkg/domain"
)

// Input carries the user editable fields of a campground.
type Input struct {
	Name        string
	Image       string
	Description string
	Price       string
	Location    string
}

// ReviewInput carries the user editable fields of a review.
type ReviewInput struct {
	Rating int
	Text   string
}

// Service manages campgrounds and the comments and reviews attached to them.
// Every mutation takes the acting principal explicitly; nil means anonymous.
//
//go:generate mockgen -package mockcampground -source=interface.go -destination=mock/mockcampground.go *
type Service interface {
	List(ctx context.Context, cursor string, limit uint) ([]domain.Campground, string, error)
	Show(ctx context.Context, ID domain.CampgroundID) (*domain.Campground, error)
	Create(ctx context.Context, principal *domain.Principal, input Input) (*domain.Campground, error)
	Update(ctx context.Context,
		principal *domain.Principal,
		ID domain.CampgroundID,
		input Input) (*domain.Campground, error)
	Delete(ctx context.Context, principal *domain.Principal, ID domain.CampgroundID) error

	AddComment(ctx context.Context,
		principal *domain.Principal,
		campgroundID domain.CampgroundID,
		text string) (*domain.Comment, error)
	EditComment(ctx context.Context,
		principal *domain.Principal,
		campgroundID domain.CampgroundID,
		commentID domain.CommentID,
		text string) (*domain.Comment, error)
	DeleteComment(ctx context.Context,
		principal *domain.Principal,
		campgroundID domain.CampgroundID,
		commentID domain.CommentID) error

	Reviews(ctx context.Context, campgroundID domain.CampgroundID) ([]domain.Review, error)
	AddReview(ctx context.Context,
		principal *domain.Principal,
		campgroundID domain.CampgroundID,
		input ReviewInput) (*domain.Review, error)
	EditReview(ctx context.Context,
		principal *domain.Principal,
		campgroundID domain.CampgroundID,
		reviewID domain.ReviewID,
		input ReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context,
		principal *domain.Principal,
		campgroundID domain.CampgroundID,
		reviewID domain.ReviewID) error
}
