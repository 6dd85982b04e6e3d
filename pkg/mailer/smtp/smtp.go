// Package smtp implements mailer.Mailer on top of an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/mailer"
	"yelpcamp/pkg/serrors"

	"github.com/wneessen/go-mail"
)

// Options configure the SMTP relay.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the sender address of every message.
	From string
	// Timeout bounds dialing and delivering one message.
	Timeout time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		Timeout:  cfg.Mail.Timeout,
	}
}

// Mailer sends messages through an SMTP relay, dialing once per message.
type Mailer struct {
	client *mail.Client
	from   string
}

// Ensure Mailer implements mailer.Mailer.
var _ mailer.Mailer = (*Mailer)(nil)

// New creates a Mailer. Authentication is only enabled when a username is set.
func New(options Options) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(options.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if options.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(options.Timeout))
	}
	if options.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(options.Username),
			mail.WithPassword(options.Password),
		)
	}

	client, err := mail.NewClient(options.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return &Mailer{client: client, from: options.From}, nil
}

// Send delivers message. ctx bounds the whole SMTP session.
func (m *Mailer) Send(ctx context.Context, message mailer.Message) error {
	msg, err := m.compose(message)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return serrors.Wrap(serrors.ErrExternalService, err, "could not send mail to %s", message.To)
	}

	return nil
}

func (m *Mailer) compose(message mailer.Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid sender address")
	}
	if err := msg.To(message.To); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipient address")
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Body)

	return msg, nil
}
