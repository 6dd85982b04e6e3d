package v1handler

import (
	"context"

	"yelpcamp/internal/api/specs/v1specs"
)

// CreateUpload hands out a presigned slot; the returned imageUrl is then used
// as the campground image.
func (h *Handler) CreateUpload(ctx context.Context, req *v1specs.UploadRequest) (*v1specs.Upload, error) {
	upload, err := h.Images.PresignUpload(ctx, req.ContentType)
	if err != nil {
		return nil, err
	}

	header := v1specs.UploadHeader{}
	for k, v := range upload.Header {
		header[k] = v
	}

	return &v1specs.Upload{
		Key:       upload.Key,
		Method:    upload.Method,
		URL:       upload.URL,
		Header:    header,
		ImageUrl:  upload.ImageURL,
		ExpiresAt: upload.ExpiresAt,
	}, nil
}
