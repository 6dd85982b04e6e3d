package passwordreset_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"yelpcamp/internal/passwordreset"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/mailer"
	mockmailer "yelpcamp/pkg/mailer/mock"
	"yelpcamp/pkg/password"
	"yelpcamp/pkg/serrors"
	"yelpcamp/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memStore keeps users in memory and applies the same token rules as the
// postgres storage.
type memStore struct {
	mu     sync.Mutex
	users  map[domain.UserID]*domain.User
	jobs   []river.JobArgs
	jobErr error
}

func newMemStore(users ...domain.User) *memStore {
	s := &memStore{users: map[domain.UserID]*domain.User{}}
	for i := range users {
		u := users[i]
		s.users[u.ID] = &u
	}

	return s
}

func (s *memStore) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			c := *u

			return &c, nil
		}
	}

	return nil, nil
}

func (s *memStore) UserByResetToken(_ context.Context, token string, now time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken != "" && u.ResetToken == token && u.ResetTokenExpiresAt.After(now) {
			c := *u

			return &c, nil
		}
	}

	return nil, nil
}

func (s *memStore) UpdateUser(_ context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if updates.WhileResetToken != nil &&
		(u.ResetToken != *updates.WhileResetToken || !u.ResetTokenExpiresAt.After(updates.ResetTokenLiveAt)) {
		return nil, nil
	}
	if updates.PasswordHash != nil {
		u.PasswordHash = *updates.PasswordHash
	}
	if updates.ResetToken != nil {
		u.ResetToken = *updates.ResetToken
		if u.ResetToken == "" {
			u.ResetTokenExpiresAt = time.Time{}
		} else if updates.ResetTokenExpiresAt != nil {
			u.ResetTokenExpiresAt = *updates.ResetTokenExpiresAt
		}
	}
	c := *u

	return &c, nil
}

func (s *memStore) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jobErr != nil {
		return false, s.jobErr
	}
	s.jobs = append(s.jobs, args)

	return true, nil
}

func (s *memStore) user(id domain.UserID) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.users[id]
}

type sessionFunc func(domain.UserID) (string, error)

func (f sessionFunc) Issue(id domain.UserID) (string, error) { return f(id) }

var staticSessions = sessionFunc(func(id domain.UserID) (string, error) { return "session-" + id.String(), nil })

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newFlow(t *testing.T, store *memStore, m mailer.Mailer, c *clock) *passwordreset.Flow {
	t.Helper()

	seq := 0

	return passwordreset.New(store, m, staticSessions, passwordreset.Options{
		TokenTTL:        time.Hour,
		TokenBytes:      20,
		BaseURL:         "https://camp.example/",
		MailMaxAttempts: 3,
		Now:             c.Now,
		Tokens: func(n int) (string, error) {
			seq++

			return strings.Repeat("ab", n-1) + string(rune('0'+seq)) + "0", nil
		},
	})
}

func carol() domain.User {
	return domain.User{
		ID:           domain.UserID(uuid.New()),
		Username:     "carol",
		Email:        "carol@example.com",
		PasswordHash: "old-hash",
	}
}

func TestFlow_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	var sent mailer.Message
	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		sent = msg

		return nil
	})

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), "Carol@Example.com"))

	stored := store.user(u.ID)
	require.Len(t, stored.ResetToken, 40)
	require.Equal(t, c.now.Add(time.Hour), stored.ResetTokenExpiresAt)
	require.Equal(t, "carol@example.com", sent.To)
	require.Contains(t, sent.Body, "https://camp.example/reset/"+stored.ResetToken)
}

func TestFlow_Issue_NoAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no mail is sent and no token is stored
	m := mockmailer.NewMockMailer(ctrl)
	flow := newFlow(t, newMemStore(carol()), m, &clock{now: time.Now()})

	err := flow.Issue(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.EqualError(t, err, "No account with that email address exists.")
}

func TestFlow_Issue_MailFailureKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	flow := newFlow(t, store, m, c)
	err := flow.Issue(context.Background(), u.Email)
	require.ErrorIs(t, err, serrors.ErrExternalService)

	tkn := store.user(u.ID).ResetToken
	require.NotEmpty(t, tkn)

	got, err := flow.Validate(context.Background(), tkn)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestFlow_Issue_OverwritesPreviousToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	first := store.user(u.ID).ResetToken
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	second := store.user(u.ID).ResetToken
	require.NotEqual(t, first, second)

	_, err := flow.Validate(context.Background(), first)
	require.ErrorIs(t, err, serrors.ErrInvalidToken)
	_, err = flow.Validate(context.Background(), second)
	require.NoError(t, err)
}

func TestFlow_Validate_Expiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	tkn := store.user(u.ID).ResetToken

	c.now = c.now.Add(59 * time.Minute)
	_, err := flow.Validate(context.Background(), tkn)
	require.NoError(t, err)

	c.now = c.now.Add(time.Minute)
	_, err = flow.Validate(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrInvalidToken)

	// expired and unknown tokens are indistinguishable
	_, unknownErr := flow.Validate(context.Background(), "unknown")
	require.Equal(t, err.Error(), unknownErr.Error())

	_, err = flow.Consume(context.Background(), tkn, "newpass1", "newpass1")
	require.ErrorIs(t, err, serrors.ErrInvalidToken)
	require.Equal(t, "old-hash", store.user(u.ID).PasswordHash)
}

func TestFlow_Consume_SingleUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	tkn := store.user(u.ID).ResetToken

	res, err := flow.Consume(context.Background(), tkn, "newpass1", "newpass1")
	require.NoError(t, err)
	require.Equal(t, u.ID, res.User.ID)
	require.Equal(t, "session-"+u.ID.String(), res.Session)

	stored := store.user(u.ID)
	require.Empty(t, stored.ResetToken)
	require.True(t, stored.ResetTokenExpiresAt.IsZero())
	require.NoError(t, password.Compare(stored.PasswordHash, "newpass1"))

	// confirmation mail is queued for the worker
	require.Len(t, store.jobs, 1)
	job, ok := store.jobs[0].(mailer.JobArgs)
	require.True(t, ok)
	require.Equal(t, u.Email, job.Message.To)
	require.Equal(t, 3, job.InsertOpts().MaxAttempts)

	_, err = flow.Validate(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrInvalidToken)
	_, err = flow.Consume(context.Background(), tkn, "another1", "another1")
	require.ErrorIs(t, err, serrors.ErrInvalidToken)
}

func TestFlow_Consume_ConcurrentUseSucceedsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	tkn := store.user(u.ID).ResetToken

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = flow.Consume(context.Background(), tkn, "newpass1", "newpass1")
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	}
	require.Equal(t, 1, succeeded)
	require.Len(t, store.jobs, 1)
}

func TestFlow_Consume_MismatchKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	tkn := store.user(u.ID).ResetToken

	_, err := flow.Consume(context.Background(), tkn, "newpass1", "newpass2")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "Passwords do not match.")
	require.Equal(t, tkn, store.user(u.ID).ResetToken)

	// retry with matching fields succeeds
	_, err = flow.Consume(context.Background(), tkn, "newpass1", "newpass1")
	require.NoError(t, err)
}

func TestFlow_Consume_InvalidTokenBeforeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow := newFlow(t, newMemStore(carol()), mockmailer.NewMockMailer(ctrl), &clock{now: time.Now()})

	_, err := flow.Consume(context.Background(), "bogus", "a", "b")
	require.ErrorIs(t, err, serrors.ErrInvalidToken)
}

func TestFlow_Consume_ConfirmationQueueFailureKeepsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	store.jobErr = errors.New("queue unavailable")
	c := &clock{now: time.Now()}

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	flow := newFlow(t, store, m, c)
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	tkn := store.user(u.ID).ResetToken

	res, err := flow.Consume(context.Background(), tkn, "newpass1", "newpass1")
	require.NoError(t, err)
	require.NotEmpty(t, res.Session)
	require.NoError(t, password.Compare(store.user(u.ID).PasswordHash, "newpass1"))
}

func TestFlow_Consume_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := carol()
	store := newMemStore(u)
	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	flow := newFlow(t, store, m, &clock{now: time.Now()})
	require.NoError(t, flow.Issue(context.Background(), u.Email))
	tkn := store.user(u.ID).ResetToken

	_, err := flow.Consume(context.Background(), tkn, "123", "123")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, tkn, store.user(u.ID).ResetToken)
}
