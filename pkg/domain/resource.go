package domain

import "github.com/google/uuid"

// ResourceKind enumerates the owned resources a principal may mutate.
type ResourceKind string

const (
	ResourceCampground ResourceKind = "CAMPGROUND"
	ResourceComment    ResourceKind = "COMMENT"
	ResourceReview     ResourceKind = "REVIEW"
)

// ResourceRef points at one owned resource.
type ResourceRef struct {
	Kind ResourceKind
	ID   uuid.UUID
}

// CampgroundRef references the campground with the given ID.
func CampgroundRef(id CampgroundID) ResourceRef {
	return ResourceRef{Kind: ResourceCampground, ID: uuid.UUID(id)}
}

// CommentRef references the comment with the given ID.
func CommentRef(id CommentID) ResourceRef {
	return ResourceRef{Kind: ResourceComment, ID: uuid.UUID(id)}
}

// ReviewRef references the review with the given ID.
func ReviewRef(id ReviewID) ResourceRef {
	return ResourceRef{Kind: ResourceReview, ID: uuid.UUID(id)}
}
