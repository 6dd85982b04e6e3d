// Package imagestore hands out direct-to-bucket upload slots for campground
// images, so image bytes never pass through the API process.
package imagestore

import (
	"context"
	"net/http"
	"time"
)

// AllowedContentTypes lists the image formats accepted for upload.
var AllowedContentTypes = map[string]string{ //nolint: gochecknoglobals
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Upload describes a presigned upload slot.
type Upload struct {
	// Key is the object key inside the bucket.
	Key string `json:"key"`
	// Method and URL are what the client uses to upload the file.
	Method string `json:"method"`
	URL    string `json:"url"`
	// Header must be sent along with the upload request.
	Header http.Header `json:"header"`
	// ImageURL is where the image is served once uploaded; it is the value to
	// store as the campground image.
	ImageURL  string    `json:"imageUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store issues upload slots.
//
//go:generate mockgen -package mockimagestore -source=interface.go -destination=mock/mockimagestore.go *
type Store interface {
	// PresignUpload returns an upload slot for a file of contentType.
	// Unsupported content types yield serrors.ErrBadRequest.
	PresignUpload(ctx context.Context, contentType string) (*Upload, error)
}
