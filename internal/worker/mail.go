package worker

import (
	"context"
	"errors"
	"time"

	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/mailer"
	"yelpcamp/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const mailTimeout = 30 * time.Second

// MailWorker delivers queued mails. Failed deliveries are retried by River up
// to the job's MaxAttempts; messages the transport rejects as malformed are
// cancelled since retrying can not fix them.
type MailWorker struct {
	river.WorkerDefaults[mailer.JobArgs]

	mailer mailer.Mailer
}

// NewMailWorker creates a MailWorker sending through m.
func NewMailWorker(m mailer.Mailer) *MailWorker {
	return &MailWorker{mailer: m}
}

// Timeout bounds a single delivery attempt.
func (w *MailWorker) Timeout(*river.Job[mailer.JobArgs]) time.Duration {
	return mailTimeout
}

// Work sends the job's message.
func (w *MailWorker) Work(ctx context.Context, job *river.Job[mailer.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("subject", job.Args.Message.Subject))

	err := w.mailer.Send(ctx, job.Args.Message)
	if err == nil {
		logger.Debug(ctx, "mail delivered")

		return nil
	}

	if errors.Is(err, serrors.ErrBadRequest) {
		logger.Error(ctx, "mail rejected, cancelling job", zap.Error(err))

		return river.JobCancel(err)
	}
	logger.Warn(ctx, "mail delivery failed", zap.Error(err))

	return err
}
