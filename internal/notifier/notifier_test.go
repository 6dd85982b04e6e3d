package notifier_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"yelpcamp/internal/notifier"
	"yelpcamp/pkg/domain"
	mockstorage "yelpcamp/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

func user(name string) domain.User {
	return domain.User{ID: domain.UserID(uuid.New()), Username: name}
}

func storeEcho(_ context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = domain.NotificationID(uuid.New())

	return &n, nil
}

func TestNotifier_FanOut_CarolFollowsDave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dave, carol := user("dave"), user("carol")
	campground := domain.Campground{ID: domain.CampgroundID(uuid.New()), Author: dave.AuthorRef()}

	store := mockstorage.NewMockAllStorage(ctrl)
	store.EXPECT().Followers(gomock.Any(), dave.ID).Return([]domain.User{carol}, nil)
	store.EXPECT().StoreNotification(gomock.Any(), domain.Notification{
		UserID:       carol.ID,
		Username:     "dave",
		CampgroundID: campground.ID,
	}).DoAndReturn(storeEcho).Times(1)

	n, err := notifier.New(store, notifier.Options{Concurrency: 4})
	require.NoError(t, err)

	report, err := n.FanOut(context.Background(), dave.AuthorRef(), campground)
	require.NoError(t, err)
	require.NoError(t, report.Err())
	require.Len(t, report.Delivered, 1)
	require.Equal(t, carol.ID, report.Delivered[0].UserID)
	require.Equal(t, "dave", report.Delivered[0].Username)
	require.Equal(t, campground.ID, report.Delivered[0].CampgroundID)
	require.False(t, report.Delivered[0].IsRead)
}

func TestNotifier_FanOut_OnePerFollower(t *testing.T) {
	for _, concurrency := range []int{0, 1, 3, 16} {
		ctrl := gomock.NewController(t)

		author := user("author")
		followers := []domain.User{user("f1"), user("f2"), user("f3"), user("f4"), user("f5")}
		campground := domain.Campground{ID: domain.CampgroundID(uuid.New())}

		var (
			mu   sync.Mutex
			seen = map[domain.UserID]int{}
		)
		store := mockstorage.NewMockAllStorage(ctrl)
		store.EXPECT().Followers(gomock.Any(), author.ID).Return(followers, nil)
		store.EXPECT().StoreNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
				mu.Lock()
				seen[n.UserID]++
				mu.Unlock()

				return storeEcho(ctx, n)
			}).Times(len(followers))

		n, err := notifier.New(store, notifier.Options{Concurrency: concurrency})
		require.NoError(t, err)

		report, err := n.FanOut(context.Background(), author.AuthorRef(), campground)
		require.NoError(t, err)
		require.Equal(t, len(followers), report.Followers())
		require.Len(t, report.Delivered, len(followers))
		for i, f := range followers {
			require.Equal(t, 1, seen[f.ID])
			// report keeps follower order regardless of completion order
			require.Equal(t, f.ID, report.Delivered[i].UserID)
		}

		ctrl.Finish()
	}
}

func TestNotifier_FanOut_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := user("author")
	ok1, bad, ok2 := user("ok1"), user("bad"), user("ok2")
	campground := domain.Campground{ID: domain.CampgroundID(uuid.New())}

	store := mockstorage.NewMockAllStorage(ctrl)
	store.EXPECT().Followers(gomock.Any(), author.ID).Return([]domain.User{ok1, bad, ok2}, nil)
	store.EXPECT().StoreNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
			if n.UserID == bad.ID {
				return nil, errors.New("disk full")
			}

			return storeEcho(ctx, n)
		}).Times(3)

	reader := sdkmetric.NewManualReader()
	n, err := notifier.New(store, notifier.Options{
		Concurrency:   1,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	})
	require.NoError(t, err)

	report, err := n.FanOut(context.Background(), author.AuthorRef(), campground)
	require.NoError(t, err)
	require.Len(t, report.Delivered, 2)
	require.Len(t, report.Failed, 1)
	require.Equal(t, bad.ID, report.Failed[0].Follower.ID)
	require.ErrorContains(t, report.Err(), "could not notify bad: disk full")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	require.Equal(t, int64(2), totals["notifications.delivered"])
	require.Equal(t, int64(1), totals["notifications.failed"])
}

func TestNotifier_FanOut_NoFollowers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := user("lonely")
	store := mockstorage.NewMockAllStorage(ctrl)
	store.EXPECT().Followers(gomock.Any(), author.ID).Return(nil, nil)

	n, err := notifier.New(store, notifier.Options{})
	require.NoError(t, err)

	report, err := n.FanOut(context.Background(), author.AuthorRef(), domain.Campground{})
	require.NoError(t, err)
	require.Zero(t, report.Followers())
	require.NoError(t, report.Err())
}

func TestNotifier_FanOut_FollowerFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := user("author")
	store := mockstorage.NewMockAllStorage(ctrl)
	store.EXPECT().Followers(gomock.Any(), author.ID).Return(nil, errors.New("timeout"))

	n, err := notifier.New(store, notifier.Options{})
	require.NoError(t, err)

	_, err = n.FanOut(context.Background(), author.AuthorRef(), domain.Campground{})
	require.ErrorContains(t, err, "could not fetch followers")
}

func TestNotifier_FanOut_RespectsConcurrencyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := user("author")
	followers := make([]domain.User, 12)
	for i := range followers {
		followers[i] = user("f")
	}

	var inFlight, peak atomic.Int32
	store := mockstorage.NewMockAllStorage(ctrl)
	store.EXPECT().Followers(gomock.Any(), author.ID).Return(followers, nil)
	store.EXPECT().StoreNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			defer inFlight.Add(-1)

			return storeEcho(ctx, n)
		}).Times(len(followers))

	n, err := notifier.New(store, notifier.Options{Concurrency: 3})
	require.NoError(t, err)

	report, err := n.FanOut(context.Background(), author.AuthorRef(), domain.Campground{})
	require.NoError(t, err)
	require.Len(t, report.Delivered, len(followers))
	require.LessOrEqual(t, peak.Load(), int32(3))
}
