package mailer

import (
	"github.com/riverqueue/river"
)

// JobArgs carries a message to be delivered by the background mail worker.
type JobArgs struct {
	Message Message `json:"message"`

	// maxAttempts configures the maximum number of deliveries River attempts.
	maxAttempts int
}

// NewJob wraps message into a mail job retried up to maxAttempts times. A
// non-positive maxAttempts uses River's default.
func NewJob(message Message, maxAttempts int) JobArgs {
	return JobArgs{Message: message, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to dispatch the mail worker.
func (args JobArgs) Kind() string { return "SendMailJob" }

// InsertOpts returns the River insert options of the job.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		Queue:       river.QueueDefault,
	}
}
