// Package notifier fans a "new campground" event out to the author's followers.
//
// Fan-out is best effort: every follower gets its own notification write and a
// failed write neither aborts the remaining writes nor rolls back the ones
// already stored. The Report returned by FanOut makes partial failures
// observable to the caller.
package notifier

import (
	"context"
	"errors"
	"fmt"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "yelpcamp/internal/notifier"

var errNotStored = errors.New("notification was not stored")

// Store is the persistence the notifier needs.
type Store interface {
	Followers(ctx context.Context, userID domain.UserID) ([]domain.User, error)
	StoreNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error)
}

// Options configure the fan-out.
type Options struct {
	// Concurrency bounds the number of follower writes in flight. Values below
	// 1 are treated as 1 (sequential).
	Concurrency int
	// MeterProvider receives the delivery counters. Defaults to the global provider.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency: cfg.Notifier.Concurrency,
	}
}

// Failure records a follower whose notification could not be stored.
type Failure struct {
	Follower domain.AuthorRef
	Err      error
}

// Report describes the outcome of one fan-out.
type Report struct {
	CampgroundID domain.CampgroundID
	// Delivered holds the stored notifications in follower order.
	Delivered []domain.Notification
	// Failed holds the followers that were not notified, in follower order.
	Failed []Failure
}

// Followers returns the number of followers the fan-out addressed.
func (r Report) Followers() int { return len(r.Delivered) + len(r.Failed) }

// Err combines all per-follower failures, or returns nil when every follower
// was notified.
func (r Report) Err() error {
	var err error
	for _, f := range r.Failed {
		err = multierr.Append(err, fmt.Errorf("could not notify %s: %w", f.Follower.Username, f.Err))
	}

	return err
}

// Notifier stores one notification per follower of a publishing author.
type Notifier struct {
	store       Store
	concurrency int

	tracer    trace.Tracer
	delivered metric.Int64Counter
	failed    metric.Int64Counter
}

// New creates a Notifier writing through store.
func New(store Store, options Options) (*Notifier, error) {
	mp := options.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	delivered, err := meter.Int64Counter(
		"notifications.delivered",
		metric.WithDescription("Number of follower notifications stored"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create delivered counter: %w", err)
	}
	failed, err := meter.Int64Counter(
		"notifications.failed",
		metric.WithDescription("Number of follower notifications that could not be stored"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create failed counter: %w", err)
	}

	return &Notifier{
		store:       store,
		concurrency: max(options.Concurrency, 1),
		tracer:      otel.Tracer(instrumentationName),
		delivered:   delivered,
		failed:      failed,
	}, nil
}

// FanOut notifies every current follower of author about campground. Each
// notification carries the author's username and isRead=false. The returned
// error is non-nil only when the follower list could not be fetched; write
// failures are reported in Report.Failed.
func (n *Notifier) FanOut(ctx context.Context, author domain.AuthorRef, campground domain.Campground) (Report, error) {
	ctx, span := n.tracer.Start(ctx, "notifier.FanOut", trace.WithAttributes(
		attribute.String("author.id", author.ID.String()),
		attribute.String("campground.id", campground.ID.String()),
	))
	defer span.End()

	report := Report{CampgroundID: campground.ID}

	followers, err := n.store.Followers(ctx, author.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not fetch followers")

		return report, fmt.Errorf("could not fetch followers: %w", err)
	}
	span.SetAttributes(attribute.Int("followers", len(followers)))

	type outcome struct {
		notification *domain.Notification
		err          error
	}
	outcomes := make([]outcome, len(followers))

	// a plain group: a failed write must not cancel the others
	var g errgroup.Group
	g.SetLimit(n.concurrency)
	for i, follower := range followers {
		g.Go(func() error {
			stored, err := n.store.StoreNotification(ctx, domain.Notification{
				UserID:       follower.ID,
				Username:     author.Username,
				CampgroundID: campground.ID,
				IsRead:       false,
			})
			outcomes[i] = outcome{notification: stored, err: err}

			return nil
		})
	}
	_ = g.Wait()

	for i, o := range outcomes {
		if o.err == nil && o.notification == nil {
			o.err = errNotStored
		}
		if o.err != nil {
			report.Failed = append(report.Failed, Failure{Follower: followers[i].AuthorRef(), Err: o.err})

			continue
		}
		report.Delivered = append(report.Delivered, *o.notification)
	}

	attrs := metric.WithAttributes(attribute.String("event", "campground_created"))
	n.delivered.Add(ctx, int64(len(report.Delivered)), attrs)
	n.failed.Add(ctx, int64(len(report.Failed)), attrs)

	if err := report.Err(); err != nil {
		span.RecordError(err)
		logger.Warn(ctx, "could not notify some followers",
			zap.Stringer("campgroundID", campground.ID),
			zap.Int("failed", len(report.Failed)),
			zap.Int("followers", len(followers)),
			zap.Error(err))
	}

	return report, nil
}
