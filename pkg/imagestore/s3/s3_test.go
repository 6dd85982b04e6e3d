package s3_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"yelpcamp/pkg/imagestore/s3"
	"yelpcamp/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, endpoint string) *s3.Store {
	t.Helper()

	store, err := s3.New(context.Background(), s3.Options{
		Region:     "us-east-1",
		Endpoint:   endpoint,
		AccessKey:  "minioadmin",
		SecretKey:  "minioadmin",
		Bucket:     "yelpcamp",
		PresignTTL: 10 * time.Minute,
		Now:        func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	return store
}

func TestStore_PresignUpload_endpoint(t *testing.T) {
	store := newStore(t, "http://127.0.0.1:9000")

	up, err := store.PresignUpload(context.Background(), "image/png")
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, up.Method)
	require.True(t, strings.HasPrefix(up.Key, "campgrounds/2024/03/"))
	require.True(t, strings.HasSuffix(up.Key, ".png"))
	require.Equal(t, "http://127.0.0.1:9000/yelpcamp/"+up.Key, up.ImageURL)
	require.Equal(t, time.Date(2024, 3, 9, 12, 10, 0, 0, time.UTC), up.ExpiresAt)

	u, err := url.Parse(up.URL)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", u.Host)
	require.Equal(t, "/yelpcamp/"+up.Key, u.Path)
	require.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	require.Empty(t, up.Header.Get("Host"))
}

func TestStore_PresignUpload_aws(t *testing.T) {
	store := newStore(t, "")

	up, err := store.PresignUpload(context.Background(), "image/jpeg")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(up.Key, ".jpg"))
	require.Equal(t, "https://yelpcamp.s3.us-east-1.amazonaws.com/"+up.Key, up.ImageURL)
}

func TestStore_PresignUpload_rejectsNonImages(t *testing.T) {
	store := newStore(t, "http://127.0.0.1:9000")

	for _, ct := range []string{"", "text/html", "application/pdf"} {
		_, err := store.PresignUpload(context.Background(), ct)
		require.ErrorIs(t, err, serrors.ErrBadRequest, ct)
	}
}

func TestNew_requiresBucket(t *testing.T) {
	_, err := s3.New(context.Background(), s3.Options{Region: "us-east-1"})
	require.Error(t, err)
}
