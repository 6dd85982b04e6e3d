package storage

import (
	"context"

	"yelpcamp/pkg/domain"
)

// CommentStorage defines persistence operations for comments.
type CommentStorage interface {
	// StoreComment inserts a comment.
	StoreComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	// CommentByID fetches a comment by its ID.
	CommentByID(ctx context.Context, ID domain.CommentID) (*domain.Comment, error)
	// CampgroundComments returns all comments of a campground, oldest first.
	CampgroundComments(ctx context.Context, campgroundID domain.CampgroundID) ([]domain.Comment, error)
	// UpdateComment replaces the comment text and returns the updated row, or nil.
	UpdateComment(ctx context.Context, ID domain.CommentID, text string) (*domain.Comment, error)
	// DeleteComment deletes the comment, returning the deleted row or nil.
	DeleteComment(ctx context.Context, ID domain.CommentID) (*domain.Comment, error)
}
