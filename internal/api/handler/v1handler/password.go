package v1handler

import (
	"context"

	"yelpcamp/internal/api/specs/v1specs"
)

func (h *Handler) ForgotPassword(
	ctx context.Context,
	req *v1specs.ForgotPasswordRequest) (*v1specs.MessageResponse, error) {
	if err := h.PasswordReset.Issue(ctx, req.Email); err != nil {
		return nil, err
	}

	return &v1specs.MessageResponse{
		Message: "An e-mail has been sent to " + req.Email + " with further instructions.",
	}, nil
}

func (h *Handler) CheckResetToken(
	ctx context.Context,
	params v1specs.CheckResetTokenParams) (*v1specs.ResetTokenStatus, error) {
	user, err := h.PasswordReset.Validate(ctx, params.Token)
	if err != nil {
		return nil, err
	}

	return &v1specs.ResetTokenStatus{Valid: true, Email: user.Email}, nil
}

func (h *Handler) ResetPassword(
	ctx context.Context,
	req *v1specs.ResetPasswordRequest,
	params v1specs.ResetPasswordParams) (*v1specs.Session, error) {
	res, err := h.PasswordReset.Consume(ctx, params.Token, req.Password, req.Confirm)
	if err != nil {
		return nil, err
	}

	return sessionToV1Specs(res.User, res.Session), nil
}
