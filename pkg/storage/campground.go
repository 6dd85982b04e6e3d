package storage

import (
	"context"
	"time"

	"yelpcamp/pkg/domain"
)

// CampgroundUpdates describes the optional fields of a campground that can be
// changed. Only non-nil fields are written; the author is never changed.
type CampgroundUpdates struct {
	Name        *string
	Image       *string
	Description *string
	Price       *string
	Location    *string
	// LocationQuery is the location text as entered, before geocoding.
	LocationQuery *string
	Lat           *float64
	Lng           *float64
	// Rating is written only by the rating recompute after review mutations.
	Rating *float64
}

// CampgroundCursor is the keyset position of the last campground on a page.
// Campgrounds sharing a creation time are ordered by ID.
type CampgroundCursor struct {
	CreatedAt time.Time
	ID        domain.CampgroundID
}

// IsZero reports whether the cursor points at the start of the listing.
func (c CampgroundCursor) IsZero() bool { return c.CreatedAt.IsZero() }

// CampgroundPage groups a page of campgrounds with an optional NextCursor used
// for pagination.
type CampgroundPage struct {
	// Campgrounds contains the current page, newest first.
	Campgrounds []domain.Campground
	// NextCursor is the cursor for the next page. It is nil when there is no
	// next page.
	NextCursor *CampgroundCursor
}

// CampgroundStorage defines persistence operations for campgrounds. Comments and
// reviews are loaded through their own storages.
type CampgroundStorage interface {
	// StoreCampground inserts a campground and returns it with generated fields.
	StoreCampground(ctx context.Context, campground domain.Campground) (*domain.Campground, error)
	// CampgroundByID fetches a campground by its ID.
	CampgroundByID(ctx context.Context, ID domain.CampgroundID) (*domain.Campground, error)
	// UpdateCampground applies updates and returns the updated row, or nil when
	// the campground does not exist. updated_at is set automatically.
	UpdateCampground(ctx context.Context,
		ID domain.CampgroundID,
		updates CampgroundUpdates) (*domain.Campground, error)
	// DeleteCampground deletes the campground together with its comments,
	// reviews and notifications, returning the deleted row or nil.
	DeleteCampground(ctx context.Context, ID domain.CampgroundID) (*domain.Campground, error)
	// Campgrounds returns a page of campgrounds positioned after the optional
	// cursor, newest first.
	Campgrounds(ctx context.Context, cursor CampgroundCursor, limit uint) (CampgroundPage, error)
	// CampgroundsByAuthor returns every campground created by the user, newest first.
	CampgroundsByAuthor(ctx context.Context, authorID domain.UserID) ([]domain.Campground, error)
}
