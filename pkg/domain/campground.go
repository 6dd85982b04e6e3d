package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampgroundID uniquely identifies a campground.
type CampgroundID uuid.UUID

// String returns the canonical textual form of the ID.
func (id CampgroundID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id CampgroundID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *CampgroundID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Campground is the primary published listing.
type Campground struct {
	// ID is the unique identifier of the campground.
	ID CampgroundID `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Image is the URL of the cover image.
	Image string `json:"image"`
	// Description is free text shown on the campground page.
	Description string `json:"description"`
	// Price is the nightly price as entered by the author.
	Price string `json:"price"`
	// Location is the human readable address, geocoded into Lat/Lng.
	Location string `json:"location"`
	// LocationQuery is the location as the author typed it. Updates repeating
	// it keep the stored coordinates.
	LocationQuery string  `json:"-"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	// Author is the snapshot of the creating user.
	Author AuthorRef `json:"author"`
	// Rating is the mean score of the attached reviews, 0 when there are none.
	// Only the rating aggregator changes it.
	Rating float64 `json:"rating"`

	// Comments are populated only when the campground is loaded for display.
	Comments []Comment `json:"comments,omitempty"`
	// Reviews are populated only when the campground is loaded for display.
	Reviews []Review `json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
