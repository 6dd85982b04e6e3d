package v1handler

import (
	"context"

	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/internal/campground"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/serrors"
)

func campgroundInput(req *v1specs.CampgroundRequest) campground.Input {
	return campground.Input{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
	}
}

func reviewInput(req *v1specs.ReviewRequest) campground.ReviewInput {
	return campground.ReviewInput{Rating: req.Rating, Text: req.Text.Or("")}
}

func (h *Handler) ListCampgrounds(
	ctx context.Context,
	params v1specs.ListCampgroundsParams) (*v1specs.CampgroundPage, error) {
	limit := params.Limit.Or(0)
	if limit < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "limit must be a positive number")
	}

	campgrounds, next, err := h.Campgrounds.List(ctx, params.Cursor.Or(""), uint(limit))
	if err != nil {
		return nil, err
	}

	page := &v1specs.CampgroundPage{Campgrounds: DomainCampgroundsToV1Specs(campgrounds)}
	if next != "" {
		page.NextCursor = v1specs.NewOptString(next)
	}

	return page, nil
}

func (h *Handler) CreateCampground(ctx context.Context, req *v1specs.CampgroundRequest) (*v1specs.Campground, error) {
	created, err := h.Campgrounds.Create(ctx, PrincipalFromContext(ctx), campgroundInput(req))
	if err != nil {
		return nil, err
	}

	return DomainCampgroundToV1Specs(created), nil
}

func (h *Handler) ShowCampground(
	ctx context.Context,
	params v1specs.ShowCampgroundParams) (*v1specs.Campground, error) {
	found, err := h.Campgrounds.Show(ctx, domain.CampgroundID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainCampgroundToV1Specs(found), nil
}

func (h *Handler) UpdateCampground(
	ctx context.Context,
	req *v1specs.CampgroundRequest,
	params v1specs.UpdateCampgroundParams) (*v1specs.Campground, error) {
	updated, err := h.Campgrounds.Update(ctx, PrincipalFromContext(ctx), domain.CampgroundID(params.ID), campgroundInput(req))
	if err != nil {
		return nil, err
	}

	return DomainCampgroundToV1Specs(updated), nil
}

func (h *Handler) DeleteCampground(ctx context.Context, params v1specs.DeleteCampgroundParams) error {
	return h.Campgrounds.Delete(ctx, PrincipalFromContext(ctx), domain.CampgroundID(params.ID))
}

func (h *Handler) AddComment(
	ctx context.Context,
	req *v1specs.TextRequest,
	params v1specs.AddCommentParams) (*v1specs.Comment, error) {
	comment, err := h.Campgrounds.AddComment(ctx, PrincipalFromContext(ctx), domain.CampgroundID(params.ID), req.Text)
	if err != nil {
		return nil, err
	}

	return DomainCommentToV1Specs(comment), nil
}

func (h *Handler) EditComment(
	ctx context.Context,
	req *v1specs.TextRequest,
	params v1specs.EditCommentParams) (*v1specs.Comment, error) {
	comment, err := h.Campgrounds.EditComment(ctx,
		PrincipalFromContext(ctx),
		domain.CampgroundID(params.ID),
		domain.CommentID(params.CommentID),
		req.Text)
	if err != nil {
		return nil, err
	}

	return DomainCommentToV1Specs(comment), nil
}

func (h *Handler) DeleteComment(ctx context.Context, params v1specs.DeleteCommentParams) error {
	return h.Campgrounds.DeleteComment(ctx,
		PrincipalFromContext(ctx),
		domain.CampgroundID(params.ID),
		domain.CommentID(params.CommentID))
}

func (h *Handler) ListReviews(ctx context.Context, params v1specs.ListReviewsParams) (v1specs.ReviewList, error) {
	reviews, err := h.Campgrounds.Reviews(ctx, domain.CampgroundID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainReviewsToV1Specs(reviews), nil
}

func (h *Handler) AddReview(
	ctx context.Context,
	req *v1specs.ReviewRequest,
	params v1specs.AddReviewParams) (*v1specs.Review, error) {
	review, err := h.Campgrounds.AddReview(ctx, PrincipalFromContext(ctx), domain.CampgroundID(params.ID), reviewInput(req))
	if err != nil {
		return nil, err
	}

	return DomainReviewToV1Specs(review), nil
}

func (h *Handler) EditReview(
	ctx context.Context,
	req *v1specs.ReviewRequest,
	params v1specs.EditReviewParams) (*v1specs.Review, error) {
	review, err := h.Campgrounds.EditReview(ctx,
		PrincipalFromContext(ctx),
		domain.CampgroundID(params.ID),
		domain.ReviewID(params.ReviewID),
		reviewInput(req))
	if err != nil {
		return nil, err
	}

	return DomainReviewToV1Specs(review), nil
}

func (h *Handler) DeleteReview(ctx context.Context, params v1specs.DeleteReviewParams) error {
	return h.Campgrounds.DeleteReview(ctx,
		PrincipalFromContext(ctx),
		domain.CampgroundID(params.ID),
		domain.ReviewID(params.ReviewID))
}
