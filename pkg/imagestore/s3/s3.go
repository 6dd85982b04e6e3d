// Package s3 implements imagestore.Store with presigned PUT requests against
// an S3 compatible bucket (AWS S3, MinIO).
package s3

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/imagestore"
	"yelpcamp/pkg/serrors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Options configure the Store.
type Options struct {
	Region    string
	Endpoint  string // empty uses AWS
	AccessKey string
	SecretKey string
	Bucket    string
	// PresignTTL is how long an upload slot stays valid.
	PresignTTL time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Region:     cfg.S3.Region,
		Endpoint:   cfg.S3.Endpoint,
		AccessKey:  cfg.S3.AccessKey,
		SecretKey:  cfg.S3.SecretKey,
		Bucket:     cfg.S3.Bucket,
		PresignTTL: cfg.S3.PresignTTL,
	}
}

// Store presigns uploads. It is safe for concurrent use.
type Store struct {
	presign *s3.PresignClient
	options Options
}

// New creates a Store. Presigning is local, so New performs no network calls.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if opts.PresignTTL <= 0 {
		opts.PresignTTL = 15 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{presign: s3.NewPresignClient(client), options: opts}, nil
}

// PresignUpload returns a presigned PUT for a new object under campgrounds/.
func (s *Store) PresignUpload(ctx context.Context, contentType string) (*imagestore.Upload, error) {
	ext, ok := imagestore.AllowedContentTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "Only image files are allowed!")
	}

	now := s.options.Now()
	key := fmt.Sprintf("campgrounds/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New(), ext)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.options.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.options.PresignTTL))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not presign upload")
	}

	header := http.Header{}
	for k, v := range req.SignedHeader {
		if strings.EqualFold(k, "host") {
			continue
		}
		header[k] = v
	}

	return &imagestore.Upload{
		Key:       key,
		Method:    req.Method,
		URL:       req.URL,
		Header:    header,
		ImageURL:  s.objectURL(key),
		ExpiresAt: now.Add(s.options.PresignTTL),
	}, nil
}

func (s *Store) objectURL(key string) string {
	if s.options.Endpoint != "" {
		return strings.TrimRight(s.options.Endpoint, "/") + "/" + s.options.Bucket + "/" + key
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.options.Bucket, s.options.Region, key)
}

var _ imagestore.Store = (*Store)(nil)
