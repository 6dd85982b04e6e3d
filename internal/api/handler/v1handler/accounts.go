package v1handler

import (
	"context"

	"yelpcamp/internal/account"
	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/pkg/domain"
)

func (h *Handler) Register(ctx context.Context, req *v1specs.RegisterRequest) (*v1specs.Session, error) {
	sess, err := h.Accounts.Register(ctx, account.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName.Or(""),
		LastName:  req.LastName.Or(""),
		Email:     req.Email,
		Avatar:    req.Avatar.Or(""),
		AdminCode: req.AdminCode.Or(""),
	})
	if err != nil {
		return nil, err
	}

	return sessionToV1Specs(sess.User, sess.Token), nil
}

func (h *Handler) Login(ctx context.Context, req *v1specs.LoginRequest) (*v1specs.Session, error) {
	sess, err := h.Accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return sessionToV1Specs(sess.User, sess.Token), nil
}

// GetProfile renders the public page of a user. The email address stays
// private to its owner.
func (h *Handler) GetProfile(ctx context.Context, params v1specs.GetProfileParams) (*v1specs.Profile, error) {
	p, err := h.Accounts.Profile(ctx, domain.UserID(params.ID))
	if err != nil {
		return nil, err
	}

	return &v1specs.Profile{
		User:        DomainUserToPublicV1Specs(p.User),
		Campgrounds: DomainCampgroundsToV1Specs(p.Campgrounds),
		Followers:   p.Followers,
	}, nil
}

func (h *Handler) Follow(ctx context.Context, params v1specs.FollowParams) error {
	return h.Accounts.Follow(ctx, PrincipalFromContext(ctx), domain.UserID(params.ID))
}

func (h *Handler) Unfollow(ctx context.Context, params v1specs.UnfollowParams) error {
	return h.Accounts.Unfollow(ctx, PrincipalFromContext(ctx), domain.UserID(params.ID))
}

func (h *Handler) ListNotifications(ctx context.Context) (v1specs.NotificationList, error) {
	list, err := h.Accounts.Notifications(ctx, PrincipalFromContext(ctx))
	if err != nil {
		return nil, err
	}

	out := make(v1specs.NotificationList, 0, len(list))
	for i := range list {
		out = append(out, *DomainNotificationToV1Specs(&list[i]))
	}

	return out, nil
}

func (h *Handler) ReadNotification(
	ctx context.Context,
	params v1specs.ReadNotificationParams) (*v1specs.Notification, error) {
	n, err := h.Accounts.ReadNotification(ctx, PrincipalFromContext(ctx), domain.NotificationID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainNotificationToV1Specs(n), nil
}
