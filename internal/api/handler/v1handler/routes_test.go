package v1handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yelpcamp/internal/account"
	mockaccount "yelpcamp/internal/account/mock"
	"yelpcamp/internal/api/handler/v1handler"
	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/internal/campground"
	mockcampground "yelpcamp/internal/campground/mock"
	"yelpcamp/internal/passwordreset"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/imagestore"
	mockimagestore "yelpcamp/pkg/imagestore/mock"
	"yelpcamp/pkg/serrors"
	mockstorage "yelpcamp/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeReset struct {
	issued   []string
	valid    map[string]*domain.User
	consumed []string
}

func (f *fakeReset) Issue(_ context.Context, email string) error {
	if email == "missing@example.com" {
		return serrors.With(serrors.ErrNotFound, "No account with that email address exists.")
	}
	f.issued = append(f.issued, email)

	return nil
}

func (f *fakeReset) Validate(_ context.Context, token string) (*domain.User, error) {
	user, ok := f.valid[token]
	if !ok {
		return nil, serrors.With(serrors.ErrInvalidToken, "Password reset token is invalid or has expired.")
	}

	return user, nil
}

func (f *fakeReset) Consume(ctx context.Context, token, newPassword, confirm string) (*passwordreset.Result, error) {
	user, err := f.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if newPassword != confirm {
		return nil, serrors.With(serrors.ErrBadRequest, "Passwords do not match.")
	}
	delete(f.valid, token)
	f.consumed = append(f.consumed, token)

	return &passwordreset.Result{User: user, Session: "new-session"}, nil
}

type routeFixture struct {
	campgrounds *mockcampground.MockService
	accounts    *mockaccount.MockService
	images      *mockimagestore.MockStore
	reset       *fakeReset

	alice  *domain.User
	bearer string
	srv    *httptest.Server
}

func newRouteFixture(t *testing.T) *routeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &routeFixture{
		campgrounds: mockcampground.NewMockService(ctrl),
		accounts:    mockaccount.NewMockService(ctrl),
		images:      mockimagestore.NewMockStore(ctrl),
		reset:       &fakeReset{valid: map[string]*domain.User{}},
		alice:       &domain.User{ID: domain.UserID(uuid.New()), Username: "alice", Email: "alice@example.com"},
	}

	priv, pubPEM := genRSAKeys(t)
	users := mockstorage.NewMockStorage(ctrl)
	users.EXPECT().UserByID(gomock.Any(), f.alice.ID).Return(f.alice, nil).AnyTimes()
	sh := newSecHandlerForTest(t, pubPEM, users)
	now := time.Now()
	f.bearer = "Bearer " + signJWTRS256(t, priv, f.alice.ID.String(), now, now.Add(time.Hour))

	h := v1handler.New(v1handler.Deps{
		Campgrounds:   f.campgrounds,
		Accounts:      f.accounts,
		PasswordReset: f.reset,
		Images:        f.images,
	})
	srv, err := v1specs.NewServer(h, sh,
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithPathPrefix("/v1"))
	require.NoError(t, err)

	f.srv = httptest.NewServer(srv)
	t.Cleanup(f.srv.Close)

	return f
}

func (f *routeFixture) do(t *testing.T, method, path, body string, authenticated bool) (int, []byte) {
	t.Helper()

	auth := ""
	if authenticated {
		auth = f.bearer
	}

	return f.doWithAuth(t, method, path, body, auth)
}

func (f *routeFixture) doWithAuth(t *testing.T, method, path, body, auth string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, f.srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	res, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, data
}

func decodeError(t *testing.T, data []byte) v1specs.Error {
	t.Helper()

	var e v1specs.Error
	require.NoError(t, e.UnmarshalJSON(data))

	return e
}

const lakeBody = `{"name":"Lake","image":"https://img.example/lake.jpg","description":"Quiet",` +
	`"price":"9.50","location":"Yosemite"}`

func isPrincipal(user *domain.User) gomock.Matcher {
	return gomock.Cond(func(p *domain.Principal) bool {
		return p != nil && p.ID == user.ID
	})
}

func TestCampgroundRoutes_Create(t *testing.T) {
	f := newRouteFixture(t)

	created := &domain.Campground{ID: domain.CampgroundID(uuid.New()), Name: "Lake", Author: f.alice.AuthorRef()}
	f.campgrounds.EXPECT().Create(gomock.Any(), isPrincipal(f.alice), campground.Input{
		Name:        "Lake",
		Image:       "https://img.example/lake.jpg",
		Description: "Quiet",
		Price:       "9.50",
		Location:    "Yosemite",
	}).Return(created, nil)

	status, body := f.do(t, http.MethodPost, "/v1/campgrounds", lakeBody, true)
	require.Equal(t, http.StatusCreated, status)

	var got v1specs.Campground
	require.NoError(t, got.UnmarshalJSON(body))
	require.Equal(t, uuid.UUID(created.ID), got.ID)
	require.Equal(t, "alice", got.Author.Username)
	require.False(t, got.Lat.IsSet())
	require.NotContains(t, string(body), `"comments"`)
}

func TestCampgroundRoutes_CreateAnonymous(t *testing.T) {
	f := newRouteFixture(t)

	status, body := f.do(t, http.MethodPost, "/v1/campgrounds", lakeBody, false)
	require.Equal(t, http.StatusUnauthorized, status)
	e := decodeError(t, body)
	require.Equal(t, serrors.ErrUnauthorized.Error(), e.Code)
	require.Equal(t, "You need to be logged in to do that", e.Message)
}

func TestCampgroundRoutes_InvalidBearer(t *testing.T) {
	f := newRouteFixture(t)

	// Anonymous access is allowed, a bad token is not.
	status, body := f.doWithAuth(t, http.MethodGet, "/v1/campgrounds", "", "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, serrors.ErrUnauthorized.Error(), decodeError(t, body).Code)

	status, _ = f.doWithAuth(t, http.MethodPost, "/v1/campgrounds", lakeBody, "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestCampgroundRoutes_InvalidBody(t *testing.T) {
	f := newRouteFixture(t)

	status, body := f.do(t, http.MethodPost, "/v1/campgrounds", `{"name":`, true)
	require.Equal(t, http.StatusBadRequest, status)
	e := decodeError(t, body)
	require.Equal(t, serrors.ErrBadRequest.Error(), e.Code)
	require.Equal(t, "invalid request body", e.Message)

	// location is missing
	status, body = f.do(t, http.MethodPost, "/v1/campgrounds",
		`{"name":"Lake","image":"i","description":"d","price":"1"}`, true)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), decodeError(t, body).Code)
}

func TestCampgroundRoutes_List(t *testing.T) {
	f := newRouteFixture(t)

	f.campgrounds.EXPECT().List(gomock.Any(), "abc", uint(5)).
		Return([]domain.Campground{{Name: "One"}, {Name: "Two"}}, "next", nil)

	status, body := f.do(t, http.MethodGet, "/v1/campgrounds?cursor=abc&limit=5", "", false)
	require.Equal(t, http.StatusOK, status)

	var page v1specs.CampgroundPage
	require.NoError(t, page.UnmarshalJSON(body))
	require.Len(t, page.Campgrounds, 2)
	require.Equal(t, "Two", page.Campgrounds[1].Name)
	require.Equal(t, "next", page.NextCursor.Or(""))
}

func TestCampgroundRoutes_ListLastPage(t *testing.T) {
	f := newRouteFixture(t)

	f.campgrounds.EXPECT().List(gomock.Any(), "", uint(0)).Return(nil, "", nil)

	status, body := f.do(t, http.MethodGet, "/v1/campgrounds", "", false)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"campgrounds":[]}`, string(body))
}

func TestCampgroundRoutes_ListInvalidLimit(t *testing.T) {
	f := newRouteFixture(t)

	status, body := f.do(t, http.MethodGet, "/v1/campgrounds?limit=-1", "", false)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "limit must be a positive number", decodeError(t, body).Message)

	status, body = f.do(t, http.MethodGet, "/v1/campgrounds?limit=abc", "", false)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid limit parameter", decodeError(t, body).Message)
}

func TestCampgroundRoutes_ShowMalformedID(t *testing.T) {
	f := newRouteFixture(t)

	status, body := f.do(t, http.MethodGet, "/v1/campgrounds/not-an-id", "", false)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Campground not found", decodeError(t, body).Message)
}

func TestCampgroundRoutes_UpdateForbidden(t *testing.T) {
	f := newRouteFixture(t)

	id := domain.CampgroundID(uuid.New())
	f.campgrounds.EXPECT().Update(gomock.Any(), isPrincipal(f.alice), id, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrForbidden, "You don't have permission to do that"))

	status, body := f.do(t, http.MethodPut, "/v1/campgrounds/"+id.String(), lakeBody, true)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "You don't have permission to do that", decodeError(t, body).Message)
}

func TestCampgroundRoutes_Delete(t *testing.T) {
	f := newRouteFixture(t)

	id := domain.CampgroundID(uuid.New())
	f.campgrounds.EXPECT().Delete(gomock.Any(), isPrincipal(f.alice), id).Return(nil)

	status, _ := f.do(t, http.MethodDelete, "/v1/campgrounds/"+id.String(), "", true)
	require.Equal(t, http.StatusNoContent, status)
}

func TestCommentRoutes(t *testing.T) {
	f := newRouteFixture(t)

	cgID := domain.CampgroundID(uuid.New())
	cID := domain.CommentID(uuid.New())

	f.campgrounds.EXPECT().AddComment(gomock.Any(), isPrincipal(f.alice), cgID, "nice").
		Return(&domain.Comment{ID: cID, CampgroundID: cgID, Text: "nice"}, nil)
	f.campgrounds.EXPECT().EditComment(gomock.Any(), isPrincipal(f.alice), cgID, cID, "nicer").
		Return(&domain.Comment{ID: cID, CampgroundID: cgID, Text: "nicer"}, nil)
	f.campgrounds.EXPECT().DeleteComment(gomock.Any(), isPrincipal(f.alice), cgID, cID).Return(nil)

	base := "/v1/campgrounds/" + cgID.String() + "/comments"
	status, _ := f.do(t, http.MethodPost, base, `{"text":"nice"}`, true)
	require.Equal(t, http.StatusCreated, status)

	status, body := f.do(t, http.MethodPut, base+"/"+cID.String(), `{"text":"nicer"}`, true)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "nicer")

	status, _ = f.do(t, http.MethodDelete, base+"/"+cID.String(), "", true)
	require.Equal(t, http.StatusNoContent, status)

	status, body = f.do(t, http.MethodDelete, base+"/bogus", "", true)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Comment not found", decodeError(t, body).Message)
}

func TestReviewRoutes(t *testing.T) {
	f := newRouteFixture(t)

	cgID := domain.CampgroundID(uuid.New())
	rID := domain.ReviewID(uuid.New())

	f.campgrounds.EXPECT().Reviews(gomock.Any(), cgID).Return(nil, nil)
	f.campgrounds.EXPECT().AddReview(gomock.Any(), isPrincipal(f.alice), cgID, campground.ReviewInput{Rating: 4, Text: "good"}).
		Return(&domain.Review{ID: rID, Rating: 4}, nil)
	f.campgrounds.EXPECT().AddReview(gomock.Any(), isPrincipal(f.alice), cgID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "You already wrote a review."))
	f.campgrounds.EXPECT().EditReview(gomock.Any(), isPrincipal(f.alice), cgID, rID, campground.ReviewInput{Rating: 2, Text: "meh"}).
		Return(&domain.Review{ID: rID, Rating: 2}, nil)
	f.campgrounds.EXPECT().DeleteReview(gomock.Any(), isPrincipal(f.alice), cgID, rID).Return(nil)

	base := "/v1/campgrounds/" + cgID.String() + "/reviews"
	status, body := f.do(t, http.MethodGet, base, "", false)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[]`, string(body))

	status, _ = f.do(t, http.MethodPost, base, `{"rating":4,"text":"good"}`, true)
	require.Equal(t, http.StatusCreated, status)

	status, body = f.do(t, http.MethodPost, base, `{"rating":5,"text":"again"}`, true)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "You already wrote a review.", decodeError(t, body).Message)

	status, _ = f.do(t, http.MethodPut, base+"/"+rID.String(), `{"rating":2,"text":"meh"}`, true)
	require.Equal(t, http.StatusOK, status)

	status, _ = f.do(t, http.MethodDelete, base+"/"+rID.String(), "", true)
	require.Equal(t, http.StatusNoContent, status)
}

func TestAccountRoutes_RegisterAndLogin(t *testing.T) {
	f := newRouteFixture(t)

	f.accounts.EXPECT().Register(gomock.Any(), account.RegisterInput{
		Username:  "bob",
		Password:  "s3cretpass",
		Email:     "bob@example.com",
		AdminCode: "code",
	}).Return(&account.Session{User: &domain.User{Username: "bob", IsAdmin: true}, Token: "tkn"}, nil)
	f.accounts.EXPECT().Login(gomock.Any(), "bob", "wrong").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "Password or username is incorrect"))

	status, body := f.do(t, http.MethodPost, "/v1/register",
		`{"username":"bob","password":"s3cretpass","email":"bob@example.com","adminCode":"code"}`, false)
	require.Equal(t, http.StatusCreated, status)

	var sess v1specs.Session
	require.NoError(t, sess.UnmarshalJSON(body))
	require.Equal(t, "tkn", sess.Token)
	require.True(t, sess.User.IsAdmin)

	status, body = f.do(t, http.MethodPost, "/v1/login", `{"username":"bob","password":"wrong"}`, false)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Password or username is incorrect", decodeError(t, body).Message)
}

func TestAccountRoutes_RegisterConflict(t *testing.T) {
	f := newRouteFixture(t)

	f.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "A user with the given username is already registered"))

	status, _ := f.do(t, http.MethodPost, "/v1/register",
		`{"username":"alice","password":"s3cretpass","email":"alice@example.com"}`, false)
	require.Equal(t, http.StatusConflict, status)
}

func TestAccountRoutes_ProfileAndFollow(t *testing.T) {
	f := newRouteFixture(t)

	bob := &domain.User{ID: domain.UserID(uuid.New()), Username: "bob", Email: "bob@example.com"}
	f.accounts.EXPECT().Profile(gomock.Any(), bob.ID).Return(&account.Profile{User: bob, Followers: 3}, nil)
	f.accounts.EXPECT().Follow(gomock.Any(), isPrincipal(f.alice), bob.ID).Return(nil)
	f.accounts.EXPECT().Unfollow(gomock.Any(), isPrincipal(f.alice), bob.ID).Return(nil)

	status, body := f.do(t, http.MethodGet, "/v1/users/"+bob.ID.String(), "", false)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), `"followers":3`)
	require.Contains(t, string(body), `"campgrounds":[]`)
	require.Contains(t, string(body), `"username":"bob"`)
	require.NotContains(t, string(body), "email")

	status, _ = f.do(t, http.MethodPost, "/v1/users/"+bob.ID.String()+"/follow", "", true)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = f.do(t, http.MethodDelete, "/v1/users/"+bob.ID.String()+"/follow", "", true)
	require.Equal(t, http.StatusNoContent, status)

	status, body = f.do(t, http.MethodGet, "/v1/users/bob", "", false)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "User not found", decodeError(t, body).Message)
}

func TestAccountRoutes_Notifications(t *testing.T) {
	f := newRouteFixture(t)

	nID := domain.NotificationID(uuid.New())
	f.accounts.EXPECT().Notifications(gomock.Any(), isPrincipal(f.alice)).
		Return([]domain.Notification{{ID: nID, Username: "bob"}}, nil)
	f.accounts.EXPECT().ReadNotification(gomock.Any(), isPrincipal(f.alice), nID).
		Return(&domain.Notification{ID: nID, IsRead: true}, nil)

	status, body := f.do(t, http.MethodGet, "/v1/notifications", "", true)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), `"username":"bob"`)

	status, body = f.do(t, http.MethodPost, "/v1/notifications/"+nID.String()+"/read", "", true)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), `"isRead":true`)

	status, body = f.do(t, http.MethodPost, "/v1/notifications/nope/read", "", true)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Notification not found", decodeError(t, body).Message)

	status, _ = f.do(t, http.MethodGet, "/v1/notifications", "", false)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestPasswordRoutes(t *testing.T) {
	f := newRouteFixture(t)
	f.reset.valid["tok"] = f.alice

	status, body := f.do(t, http.MethodPost, "/v1/password/forgot", `{"email":"alice@example.com"}`, false)
	require.Equal(t, http.StatusAccepted, status)
	require.Contains(t, string(body), "An e-mail has been sent to alice@example.com with further instructions.")
	require.Equal(t, []string{"alice@example.com"}, f.reset.issued)

	status, body = f.do(t, http.MethodPost, "/v1/password/forgot", `{"email":"missing@example.com"}`, false)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "No account with that email address exists.", decodeError(t, body).Message)

	status, body = f.do(t, http.MethodGet, "/v1/password/reset/tok", "", false)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "alice@example.com")

	status, _ = f.do(t, http.MethodPost, "/v1/password/reset/tok", `{"password":"a","confirm":"b"}`, false)
	require.Equal(t, http.StatusBadRequest, status)

	status, body = f.do(t, http.MethodPost, "/v1/password/reset/tok", `{"password":"newpass1","confirm":"newpass1"}`, false)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "new-session")

	status, body = f.do(t, http.MethodGet, "/v1/password/reset/tok", "", false)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrInvalidToken.Error(), decodeError(t, body).Code)
}

func TestUploadRoutes(t *testing.T) {
	f := newRouteFixture(t)

	f.images.EXPECT().PresignUpload(gomock.Any(), "image/png").Return(&imagestore.Upload{
		Key:      "campgrounds/2026/10/x.png",
		Method:   http.MethodPut,
		URL:      "https://bucket.example/x.png?sig=1",
		ImageURL: "https://bucket.example/x.png",
	}, nil)
	f.images.EXPECT().PresignUpload(gomock.Any(), "text/plain").
		Return(nil, serrors.With(serrors.ErrBadRequest, "Only image files are allowed!"))

	status, _ := f.do(t, http.MethodPost, "/v1/uploads", `{"contentType":"image/png"}`, false)
	require.Equal(t, http.StatusUnauthorized, status)

	status, body := f.do(t, http.MethodPost, "/v1/uploads", `{"contentType":"image/png"}`, true)
	require.Equal(t, http.StatusCreated, status)
	require.Contains(t, string(body), `"imageUrl":"https://bucket.example/x.png"`)

	status, body = f.do(t, http.MethodPost, "/v1/uploads", `{"contentType":"text/plain"}`, true)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Only image files are allowed!", decodeError(t, body).Message)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	f := newRouteFixture(t)

	status, _ := f.do(t, http.MethodPatch, "/v1/campgrounds", "", false)
	require.Equal(t, http.StatusMethodNotAllowed, status)
}

func TestRoutes_NonBearerIsAnonymous(t *testing.T) {
	f := newRouteFixture(t)

	id := domain.CampgroundID(uuid.New())
	f.campgrounds.EXPECT().Show(gomock.Any(), id).Return(&domain.Campground{ID: id, Name: "Lake"}, nil)

	status, _ := f.doWithAuth(t, http.MethodGet, "/v1/campgrounds/"+id.String(), "", "Basic Zm9vOmJhcg==")
	require.Equal(t, http.StatusOK, status)

	status, _ = f.doWithAuth(t, http.MethodDelete, "/v1/campgrounds/"+id.String(), "", "Basic Zm9vOmJhcg==")
	require.Equal(t, http.StatusUnauthorized, status)
}
