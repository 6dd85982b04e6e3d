package authz_test

import (
	"context"
	"errors"
	"testing"

	"yelpcamp/internal/authz"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/serrors"
	mockstorage "yelpcamp/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice  = &domain.Principal{ID: domain.UserID(uuid.New()), Username: "alice"}
	bob    = &domain.Principal{ID: domain.UserID(uuid.New()), Username: "bob"}
	admin1 = &domain.Principal{ID: domain.UserID(uuid.New()), Username: "admin1", IsAdmin: true}
)

func TestGate_Authorize_Campground(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campgroundID := domain.CampgroundID(uuid.New())
	campground := &domain.Campground{ID: campgroundID, Author: bob.AuthorRef()}

	tests := []struct {
		name      string
		principal *domain.Principal
		reason    authz.Reason
		errKind   serrors.Kind
	}{
		{name: "owner is allowed", principal: bob, reason: authz.ReasonAllowed},
		{name: "other user is forbidden", principal: alice, reason: authz.ReasonForbidden, errKind: serrors.ErrForbidden},
		{name: "admin is allowed", principal: admin1, reason: authz.ReasonAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mockstorage.NewMockAllStorage(ctrl)
			store.EXPECT().CampgroundByID(gomock.Any(), campgroundID).Return(campground, nil)

			decision := authz.New(store).Authorize(context.Background(), tt.principal, domain.CampgroundRef(campgroundID))
			require.Equal(t, tt.reason, decision.Reason)
			require.Equal(t, tt.reason == authz.ReasonAllowed, decision.Allowed())
			require.Equal(t, bob.AuthorRef(), decision.Owner)
			if tt.errKind == nil {
				require.NoError(t, decision.Err())
			} else {
				require.ErrorIs(t, decision.Err(), tt.errKind)
			}
		})
	}
}

func TestGate_Authorize_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no lookup happens for anonymous principals
	store := mockstorage.NewMockAllStorage(ctrl)

	decision := authz.New(store).Authorize(context.Background(), nil, domain.ReviewRef(domain.ReviewID(uuid.New())))
	require.Equal(t, authz.ReasonUnauthenticated, decision.Reason)
	require.False(t, decision.Allowed())
	require.ErrorIs(t, decision.Err(), serrors.ErrUnauthorized)
	require.EqualError(t, decision.Err(), "You need to be logged in to do that")
}

func TestGate_Authorize_NotFoundAndLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentID := domain.CommentID(uuid.New())

	t.Run("missing comment", func(t *testing.T) {
		store := mockstorage.NewMockAllStorage(ctrl)
		store.EXPECT().CommentByID(gomock.Any(), commentID).Return(nil, nil)

		decision := authz.New(store).Authorize(context.Background(), admin1, domain.CommentRef(commentID))
		require.Equal(t, authz.ReasonNotFound, decision.Reason)
		require.ErrorIs(t, decision.Err(), serrors.ErrNotFound)
		require.EqualError(t, decision.Err(), "Comment not found")
	})

	t.Run("lookup error fails closed", func(t *testing.T) {
		store := mockstorage.NewMockAllStorage(ctrl)
		store.EXPECT().CommentByID(gomock.Any(), commentID).Return(nil, errors.New("connection refused"))

		decision := authz.New(store).Authorize(context.Background(), admin1, domain.CommentRef(commentID))
		require.Equal(t, authz.ReasonNotFound, decision.Reason)
		require.False(t, decision.Allowed())
	})
}

func TestGate_Authorize_Review(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviewID := domain.ReviewID(uuid.New())
	store := mockstorage.NewMockAllStorage(ctrl)
	store.EXPECT().ReviewByID(gomock.Any(), reviewID).Return(&domain.Review{ID: reviewID, Author: alice.AuthorRef()}, nil).Times(2)

	gate := authz.New(store)
	require.True(t, gate.Authorize(context.Background(), alice, domain.ReviewRef(reviewID)).Allowed())
	require.Equal(t, authz.ReasonForbidden, gate.Authorize(context.Background(), bob, domain.ReviewRef(reviewID)).Reason)
}

func TestGate_Authorize_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockstorage.NewMockAllStorage(ctrl)

	decision := authz.New(store).Authorize(context.Background(), admin1, domain.ResourceRef{Kind: "USER", ID: uuid.New()})
	require.Equal(t, authz.ReasonNotFound, decision.Reason)
}
