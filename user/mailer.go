package user

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/wneessen/go-mail"
)

type Mailer interface {
	SendVerification(ctx context.Context, email string, link string) error
}

type SmtpMailer struct {
	host string
	port int
	user string
	pass string
}

func NewSmtpMailer(host, port, user, pass string) (*SmtpMailer, error) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid smtp port %q: %w", port, err)
	}
	return &SmtpMailer{host: host, port: portNum, user: user, pass: pass}, nil
}

func (m *SmtpMailer) SendVerification(ctx context.Context, email string, link string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.user); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Verify Your Email")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Click this link to verify your email: %s. This link will expire in 1 hour.",
		link,
	))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.pass),
		mail.WithSSL(),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

// LogMailer is the no-SMTP fallback for local development: the verification
// link ends up in the server log instead of an inbox.
type LogMailer struct{}

func (m *LogMailer) SendVerification(ctx context.Context, email string, link string) error {
	slog.Info("verification link (smtp not configured)", "email", email, "link", link)
	return nil
}
