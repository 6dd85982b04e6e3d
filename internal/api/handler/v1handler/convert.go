package v1handler

import (
	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/pkg/domain"

	"github.com/google/uuid"
)

func DomainAuthorToV1Specs(in domain.AuthorRef) v1specs.Author {
	return v1specs.Author{ID: uuid.UUID(in.ID), Username: in.Username}
}

// DomainUserToV1Specs renders the account of the session holder, contact
// details included.
func DomainUserToV1Specs(in *domain.User) v1specs.User {
	return v1specs.User{
		ID:        uuid.UUID(in.ID),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Avatar:    in.Avatar,
		IsAdmin:   in.IsAdmin,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// DomainUserToPublicV1Specs renders a user for anyone to see.
func DomainUserToPublicV1Specs(in *domain.User) v1specs.PublicUser {
	return v1specs.PublicUser{
		ID:        uuid.UUID(in.ID),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Avatar:    in.Avatar,
		CreatedAt: in.CreatedAt,
	}
}

func DomainCommentToV1Specs(in *domain.Comment) *v1specs.Comment {
	return &v1specs.Comment{
		ID:           uuid.UUID(in.ID),
		CampgroundId: uuid.UUID(in.CampgroundID),
		Author:       DomainAuthorToV1Specs(in.Author),
		Text:         in.Text,
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
}

func DomainReviewToV1Specs(in *domain.Review) *v1specs.Review {
	return &v1specs.Review{
		ID:           uuid.UUID(in.ID),
		CampgroundId: uuid.UUID(in.CampgroundID),
		Author:       DomainAuthorToV1Specs(in.Author),
		Rating:       in.Rating,
		Text:         in.Text,
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
}

func DomainReviewsToV1Specs(in []domain.Review) v1specs.ReviewList {
	out := make(v1specs.ReviewList, 0, len(in))
	for i := range in {
		out = append(out, *DomainReviewToV1Specs(&in[i]))
	}

	return out
}

// DomainCampgroundToV1Specs renders a campground. Coordinates are left out
// until the location has been geocoded, and comments and reviews only when
// they were loaded.
func DomainCampgroundToV1Specs(in *domain.Campground) *v1specs.Campground {
	out := v1specs.Campground{
		ID:          uuid.UUID(in.ID),
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Author:      DomainAuthorToV1Specs(in.Author),
		Rating:      in.Rating,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
	if in.Lat != 0 || in.Lng != 0 {
		out.Lat = v1specs.NewOptFloat64(in.Lat)
		out.Lng = v1specs.NewOptFloat64(in.Lng)
	}
	if in.Comments != nil {
		out.Comments = make([]v1specs.Comment, 0, len(in.Comments))
		for i := range in.Comments {
			out.Comments = append(out.Comments, *DomainCommentToV1Specs(&in.Comments[i]))
		}
	}
	if in.Reviews != nil {
		out.Reviews = DomainReviewsToV1Specs(in.Reviews)
	}

	return &out
}

func DomainCampgroundsToV1Specs(in []domain.Campground) []v1specs.Campground {
	out := make([]v1specs.Campground, 0, len(in))
	for i := range in {
		out = append(out, *DomainCampgroundToV1Specs(&in[i]))
	}

	return out
}

func DomainNotificationToV1Specs(in *domain.Notification) *v1specs.Notification {
	return &v1specs.Notification{
		ID:           uuid.UUID(in.ID),
		UserId:       uuid.UUID(in.UserID),
		Username:     in.Username,
		CampgroundId: uuid.UUID(in.CampgroundID),
		IsRead:       in.IsRead,
		CreatedAt:    in.CreatedAt,
	}
}

func sessionToV1Specs(user *domain.User, token string) *v1specs.Session {
	return &v1specs.Session{User: DomainUserToV1Specs(user), Token: token}
}
