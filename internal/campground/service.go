// Package campground implements campground publishing together with the
// comments and reviews attached to campgrounds.
package campground

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"yelpcamp/internal/authz"
	"yelpcamp/internal/config"
	"yelpcamp/internal/notifier"
	"yelpcamp/internal/rating"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/geocoder"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/serrors"
	"yelpcamp/pkg/storage"

	"go.uber.org/zap"
)

const (
	msgLoginRequired     = "You need to be logged in to do that"
	msgCampgroundMissing = "Campground not found"
	msgCommentMissing    = "Comment not found"
	msgReviewMissing     = "Review not found"
	msgReviewExists      = "You already wrote a review."
)

// Authorizer decides whether a principal may mutate an owned resource.
type Authorizer interface {
	Authorize(ctx context.Context, principal *domain.Principal, target domain.ResourceRef) authz.Decision
}

// Notifier tells followers about newly published campgrounds.
type Notifier interface {
	FanOut(ctx context.Context, author domain.AuthorRef, campground domain.Campground) (notifier.Report, error)
}

// Options configure listing.
type Options struct {
	// PageSize is used when List is called with a zero limit.
	PageSize uint
	// MaxPageSize caps the limit accepted by List.
	MaxPageSize uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PageSize:    cfg.Campground.PageSize,
		MaxPageSize: cfg.Campground.MaxPageSize,
	}
}

// Deps are the collaborators of the service.
type Deps struct {
	Storage  storage.Storage
	Gate     Authorizer
	Notifier Notifier
	// Geocoder is optional; without it locations are stored as entered and
	// campgrounds have no coordinates.
	Geocoder geocoder.Geocoder
}

type service struct {
	options Options
	Deps
}

// New creates a campground Service.
func New(deps Deps, options Options) Service {
	if options.PageSize == 0 {
		options.PageSize = 20
	}
	if options.MaxPageSize == 0 {
		options.MaxPageSize = 100
	}

	return &service{options: options, Deps: deps}
}

// List returns a page of campgrounds, newest first. cursor is the opaque
// value returned by the previous page.
func (s *service) List(ctx context.Context, cursor string, limit uint) ([]domain.Campground, string, error) {
	var position storage.CampgroundCursor
	if cursor != "" {
		c, err := DecodeCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		position = c
	}
	if limit == 0 {
		limit = s.options.PageSize
	}
	limit = min(limit, s.options.MaxPageSize)

	page, err := s.Storage.Campgrounds(ctx, position, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list campgrounds: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = EncodeCursor(*page.NextCursor)
	}

	return page.Campgrounds, next, nil
}

// EncodeCursor renders a listing position as an opaque URL safe string.
func EncodeCursor(c storage.CampgroundCursor) string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a value produced by EncodeCursor.
func DecodeCursor(cursor string) (storage.CampgroundCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return storage.CampgroundCursor{}, fmt.Errorf("could not decode cursor: %w", err)
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return storage.CampgroundCursor{}, errors.New("malformed cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.CampgroundCursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	var cgID domain.CampgroundID
	if err := cgID.UnmarshalText([]byte(id)); err != nil {
		return storage.CampgroundCursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return storage.CampgroundCursor{CreatedAt: createdAt, ID: cgID}, nil
}

// Show returns a campground with its comments and reviews.
func (s *service) Show(ctx context.Context, ID domain.CampgroundID) (*domain.Campground, error) {
	cg, err := s.campground(ctx, s.Storage, ID)
	if err != nil {
		return nil, err
	}

	cg.Comments, err = s.Storage.CampgroundComments(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}
	cg.Reviews, err = s.Storage.CampgroundReviews(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get reviews: %w", err)
	}

	return cg, nil
}

// Create publishes a campground authored by principal and notifies the
// author's followers. Notification failures are logged and never undo the
// creation.
func (s *service) Create(ctx context.Context, principal *domain.Principal, input Input) (*domain.Campground, error) {
	if principal == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgLoginRequired)
	}

	fields, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	cg, err := s.Storage.StoreCampground(ctx, domain.Campground{
		Name:          fields.name,
		Image:         fields.image,
		Description:   fields.description,
		Price:         fields.price,
		Location:      fields.location,
		LocationQuery: fields.query,
		Lat:           fields.lat,
		Lng:           fields.lng,
		Author:        principal.AuthorRef(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store campground: %w", err)
	}

	report, err := s.Notifier.FanOut(ctx, cg.Author, *cg)
	switch {
	case err != nil:
		logger.Error(ctx, "could not notify followers",
			zap.Stringer("campgroundID", cg.ID),
			zap.Error(err))
	case len(report.Failed) > 0:
		logger.Warn(ctx, "some followers were not notified",
			zap.Stringer("campgroundID", cg.ID),
			zap.Int("delivered", len(report.Delivered)),
			zap.Int("failed", len(report.Failed)),
			zap.Error(report.Err()))
	}

	return cg, nil
}

// Update replaces the editable fields of a campground. The author and the
// rating are never changed here.
func (s *service) Update(ctx context.Context,
	principal *domain.Principal,
	ID domain.CampgroundID,
	input Input) (*domain.Campground, error) {
	if err := s.authorize(ctx, principal, domain.CampgroundRef(ID)); err != nil {
		return nil, err
	}

	current, err := s.campground(ctx, s.Storage, ID)
	if err != nil {
		return nil, err
	}

	fields, err := s.prepareUpdate(ctx, current, input)
	if err != nil {
		return nil, err
	}

	updated, err := s.Storage.UpdateCampground(ctx, ID, storage.CampgroundUpdates{
		Name:          &fields.name,
		Image:         &fields.image,
		Description:   &fields.description,
		Price:         &fields.price,
		Location:      &fields.location,
		LocationQuery: &fields.query,
		Lat:           &fields.lat,
		Lng:           &fields.lng,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update campground: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgCampgroundMissing)
	}

	return updated, nil
}

// Delete removes a campground together with its comments and reviews.
func (s *service) Delete(ctx context.Context, principal *domain.Principal, ID domain.CampgroundID) error {
	if err := s.authorize(ctx, principal, domain.CampgroundRef(ID)); err != nil {
		return err
	}

	deleted, err := s.Storage.DeleteCampground(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete campground: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, msgCampgroundMissing)
	}

	return nil
}

// AddComment attaches a comment authored by principal to a campground.
func (s *service) AddComment(ctx context.Context,
	principal *domain.Principal,
	campgroundID domain.CampgroundID,
	text string) (*domain.Comment, error) {
	if principal == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgLoginRequired)
	}
	text, err := commentText(text)
	if err != nil {
		return nil, err
	}
	if _, err := s.campground(ctx, s.Storage, campgroundID); err != nil {
		return nil, err
	}

	comment, err := s.Storage.StoreComment(ctx, domain.Comment{
		CampgroundID: campgroundID,
		Author:       principal.AuthorRef(),
		Text:         text,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store comment: %w", err)
	}

	return comment, nil
}

// EditComment replaces the text of a comment.
func (s *service) EditComment(ctx context.Context,
	principal *domain.Principal,
	campgroundID domain.CampgroundID,
	commentID domain.CommentID,
	text string) (*domain.Comment, error) {
	if err := s.authorize(ctx, principal, domain.CommentRef(commentID)); err != nil {
		return nil, err
	}
	text, err := commentText(text)
	if err != nil {
		return nil, err
	}
	if err := s.commentBelongs(ctx, campgroundID, commentID); err != nil {
		return nil, err
	}

	updated, err := s.Storage.UpdateComment(ctx, commentID, text)
	if err != nil {
		return nil, fmt.Errorf("could not update comment: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgCommentMissing)
	}

	return updated, nil
}

// DeleteComment removes a comment.
func (s *service) DeleteComment(ctx context.Context,
	principal *domain.Principal,
	campgroundID domain.CampgroundID,
	commentID domain.CommentID) error {
	if err := s.authorize(ctx, principal, domain.CommentRef(commentID)); err != nil {
		return err
	}
	if err := s.commentBelongs(ctx, campgroundID, commentID); err != nil {
		return err
	}

	deleted, err := s.Storage.DeleteComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("could not delete comment: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, msgCommentMissing)
	}

	return nil
}

// Reviews returns the reviews of a campground, newest first.
func (s *service) Reviews(ctx context.Context, campgroundID domain.CampgroundID) ([]domain.Review, error) {
	if _, err := s.campground(ctx, s.Storage, campgroundID); err != nil {
		return nil, err
	}

	reviews, err := s.Storage.CampgroundReviews(ctx, campgroundID)
	if err != nil {
		return nil, fmt.Errorf("could not get reviews: %w", err)
	}

	return reviews, nil
}

// AddReview stores the principal's review of a campground and recomputes the
// campground rating in the same transaction. A user reviews a campground at
// most once.
func (s *service) AddReview(ctx context.Context,
	principal *domain.Principal,
	campgroundID domain.CampgroundID,
	input ReviewInput) (*domain.Review, error) {
	if principal == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgLoginRequired)
	}
	if err := validateReview(input); err != nil {
		return nil, err
	}

	var review *domain.Review
	err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := s.campground(ctx, tx, campgroundID); err != nil {
			return err
		}

		existing, err := tx.ReviewByAuthor(ctx, campgroundID, principal.ID)
		if err != nil {
			return fmt.Errorf("could not check existing review: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrBadRequest, msgReviewExists)
		}

		review, err = tx.StoreReview(ctx, domain.Review{
			CampgroundID: campgroundID,
			Author:       principal.AuthorRef(),
			Rating:       input.Rating,
			Text:         strings.TrimSpace(input.Text),
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrBadRequest, err, msgReviewExists)
		}
		if err != nil {
			return fmt.Errorf("could not store review: %w", err)
		}

		return s.recomputeRating(ctx, tx, campgroundID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// EditReview replaces a review's rating and text and recomputes the campground
// rating in the same transaction.
func (s *service) EditReview(ctx context.Context,
	principal *domain.Principal,
	campgroundID domain.CampgroundID,
	reviewID domain.ReviewID,
	input ReviewInput) (*domain.Review, error) {
	if err := s.authorize(ctx, principal, domain.ReviewRef(reviewID)); err != nil {
		return nil, err
	}
	if err := validateReview(input); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	var review *domain.Review
	err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := reviewBelongs(ctx, tx, campgroundID, reviewID); err != nil {
			return err
		}

		var err error
		review, err = tx.UpdateReview(ctx, reviewID, storage.ReviewUpdates{
			Rating: &input.Rating,
			Text:   &text,
		})
		if err != nil {
			return fmt.Errorf("could not update review: %w", err)
		}
		if review == nil {
			return serrors.With(serrors.ErrNotFound, msgReviewMissing)
		}

		return s.recomputeRating(ctx, tx, campgroundID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review and recomputes the campground rating in the
// same transaction.
func (s *service) DeleteReview(ctx context.Context,
	principal *domain.Principal,
	campgroundID domain.CampgroundID,
	reviewID domain.ReviewID) error {
	if err := s.authorize(ctx, principal, domain.ReviewRef(reviewID)); err != nil {
		return err
	}

	return s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := reviewBelongs(ctx, tx, campgroundID, reviewID); err != nil {
			return err
		}

		deleted, err := tx.DeleteReview(ctx, reviewID)
		if err != nil {
			return fmt.Errorf("could not delete review: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, msgReviewMissing)
		}

		return s.recomputeRating(ctx, tx, campgroundID)
	})
}

// recomputeRating re-reads the review set through tx and persists its mean.
func (s *service) recomputeRating(ctx context.Context, tx storage.AllStorage, campgroundID domain.CampgroundID) error {
	reviews, err := tx.CampgroundReviews(ctx, campgroundID)
	if err != nil {
		return fmt.Errorf("could not get reviews: %w", err)
	}

	avg := rating.Average(reviews)
	updated, err := tx.UpdateCampground(ctx, campgroundID, storage.CampgroundUpdates{Rating: &avg})
	if err != nil {
		return fmt.Errorf("could not update rating: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, msgCampgroundMissing)
	}

	return nil
}

func (s *service) authorize(ctx context.Context, principal *domain.Principal, target domain.ResourceRef) error {
	return s.Gate.Authorize(ctx, principal, target).Err()
}

func (s *service) campground(ctx context.Context,
	st storage.CampgroundStorage,
	ID domain.CampgroundID) (*domain.Campground, error) {
	cg, err := st.CampgroundByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get campground: %w", err)
	}
	if cg == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgCampgroundMissing)
	}

	return cg, nil
}

func (s *service) commentBelongs(ctx context.Context, campgroundID domain.CampgroundID, commentID domain.CommentID) error {
	comment, err := s.Storage.CommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("could not get comment: %w", err)
	}
	if comment == nil || comment.CampgroundID != campgroundID {
		return serrors.With(serrors.ErrNotFound, msgCommentMissing)
	}

	return nil
}

func reviewBelongs(ctx context.Context,
	tx storage.ReviewStorage,
	campgroundID domain.CampgroundID,
	reviewID domain.ReviewID) error {
	review, err := tx.ReviewByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("could not get review: %w", err)
	}
	if review == nil || review.CampgroundID != campgroundID {
		return serrors.With(serrors.ErrNotFound, msgReviewMissing)
	}

	return nil
}

type campgroundFields struct {
	name, image, description, price string
	// location is stored for display; query keeps the text as entered.
	location, query string
	lat, lng        float64
}

func (s *service) validate(input Input) (campgroundFields, error) {
	f := campgroundFields{
		name:        strings.TrimSpace(input.Name),
		description: strings.TrimSpace(input.Description),
		price:       strings.TrimSpace(input.Price),
		location:    strings.TrimSpace(input.Location),
	}
	f.query = f.location
	if f.name == "" {
		return f, serrors.With(serrors.ErrBadRequest, "Campground name is required")
	}
	if f.description == "" {
		return f, serrors.With(serrors.ErrBadRequest, "Campground description is required")
	}

	image, err := NormalizeImageURL(input.Image)
	if err != nil {
		return f, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid image URL")
	}
	f.image = image

	price, err := strconv.ParseFloat(f.price, 64)
	if err != nil || price < 0 {
		return f, serrors.With(serrors.ErrBadRequest, "Price must be a non-negative number")
	}

	return f, nil
}

func (s *service) prepare(ctx context.Context, input Input) (campgroundFields, error) {
	f, err := s.validate(input)
	if err != nil {
		return f, err
	}

	return s.geocode(ctx, f)
}

// prepareUpdate only re-geocodes when the location differs from both the
// text the author typed last time and the geocoded address.
func (s *service) prepareUpdate(ctx context.Context, current *domain.Campground, input Input) (campgroundFields, error) {
	f, err := s.validate(input)
	if err != nil {
		return f, err
	}
	if f.location == current.Location || (current.LocationQuery != "" && f.location == current.LocationQuery) {
		f.location, f.query = current.Location, current.LocationQuery
		f.lat, f.lng = current.Lat, current.Lng

		return f, nil
	}

	return s.geocode(ctx, f)
}

func (s *service) geocode(ctx context.Context, f campgroundFields) (campgroundFields, error) {
	if s.Geocoder == nil || f.location == "" {
		return f, nil
	}

	place, err := s.Geocoder.Geocode(ctx, f.location)
	if err != nil {
		return f, err
	}
	f.location = place.FormattedAddress
	f.lat, f.lng = place.Lat, place.Lng

	return f, nil
}

func commentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", serrors.With(serrors.ErrBadRequest, "Comment text is required")
	}

	return text, nil
}

func validateReview(input ReviewInput) error {
	if input.Rating < domain.MinReviewRating || input.Rating > domain.MaxReviewRating {
		return serrors.With(serrors.ErrBadRequest,
			"Please select a rating between %d and %d.", domain.MinReviewRating, domain.MaxReviewRating)
	}

	return nil
}
