// Package authz decides whether a principal may mutate an owned resource.
// Campgrounds, comments and reviews are owned by their author; admins may
// mutate any of them without becoming the author.
package authz

import (
	"context"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/serrors"

	"go.uber.org/zap"
)

// Reason explains a Decision.
type Reason string

const (
	ReasonAllowed         Reason = "ALLOWED"
	ReasonUnauthenticated Reason = "UNAUTHENTICATED"
	ReasonNotFound        Reason = "NOT_FOUND"
	ReasonForbidden       Reason = "FORBIDDEN"
)

// Decision is the outcome of a single Authorize call.
type Decision struct {
	Reason Reason
	// Kind is the kind of the resource the decision was made for.
	Kind domain.ResourceKind
	// Owner is the stored author of the target, zero when it was not fetched.
	Owner domain.AuthorRef
}

// Allowed reports whether the principal may proceed.
func (d Decision) Allowed() bool { return d.Reason == ReasonAllowed }

// Err converts a denial into a semantic error carrying the user facing message.
// It returns nil when the decision allows the mutation.
func (d Decision) Err() error {
	switch d.Reason {
	case ReasonAllowed:
		return nil
	case ReasonUnauthenticated:
		return serrors.With(serrors.ErrUnauthorized, "You need to be logged in to do that")
	case ReasonNotFound:
		return serrors.With(serrors.ErrNotFound, "%s not found", kindLabel(d.Kind))
	default:
		return serrors.With(serrors.ErrForbidden, "You don't have permission to do that")
	}
}

func kindLabel(kind domain.ResourceKind) string {
	switch kind {
	case domain.ResourceCampground:
		return "Campground"
	case domain.ResourceComment:
		return "Comment"
	case domain.ResourceReview:
		return "Review"
	default:
		return "Resource"
	}
}

// Resources fetches owned resources by ID. Lookups return (nil, nil) when the
// resource does not exist.
type Resources interface {
	CampgroundByID(ctx context.Context, ID domain.CampgroundID) (*domain.Campground, error)
	CommentByID(ctx context.Context, ID domain.CommentID) (*domain.Comment, error)
	ReviewByID(ctx context.Context, ID domain.ReviewID) (*domain.Review, error)
}

// Gate authorizes mutations. It keeps no state between calls; ownership is
// re-read from Resources on every Authorize.
type Gate struct {
	resources Resources
}

// New creates a Gate reading ownership from resources.
func New(resources Resources) *Gate {
	return &Gate{resources: resources}
}

// Authorize decides whether principal may mutate target. A nil principal is
// anonymous. Lookup failures deny with ReasonNotFound, the same as a missing
// resource.
func (g *Gate) Authorize(ctx context.Context, principal *domain.Principal, target domain.ResourceRef) Decision {
	if principal == nil {
		return Decision{Reason: ReasonUnauthenticated, Kind: target.Kind}
	}

	owner, found, err := g.owner(ctx, target)
	if err != nil {
		logger.Warn(ctx, "could not fetch resource owner, denying",
			zap.String("kind", string(target.Kind)),
			zap.Stringer("id", target.ID),
			zap.Error(err))

		return Decision{Reason: ReasonNotFound, Kind: target.Kind}
	}
	if !found {
		return Decision{Reason: ReasonNotFound, Kind: target.Kind}
	}

	if owner.ID == principal.ID || principal.IsAdmin {
		return Decision{Reason: ReasonAllowed, Kind: target.Kind, Owner: owner}
	}

	return Decision{Reason: ReasonForbidden, Kind: target.Kind, Owner: owner}
}

func (g *Gate) owner(ctx context.Context, target domain.ResourceRef) (domain.AuthorRef, bool, error) {
	switch target.Kind {
	case domain.ResourceCampground:
		c, err := g.resources.CampgroundByID(ctx, domain.CampgroundID(target.ID))
		if err != nil || c == nil {
			return domain.AuthorRef{}, false, err
		}

		return c.Author, true, nil
	case domain.ResourceComment:
		c, err := g.resources.CommentByID(ctx, domain.CommentID(target.ID))
		if err != nil || c == nil {
			return domain.AuthorRef{}, false, err
		}

		return c.Author, true, nil
	case domain.ResourceReview:
		r, err := g.resources.ReviewByID(ctx, domain.ReviewID(target.ID))
		if err != nil || r == nil {
			return domain.AuthorRef{}, false, err
		}

		return r.Author, true, nil
	default:
		return domain.AuthorRef{}, false, nil
	}
}
