// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/thdihan/rangva-server/internal/config"
)

// Mailer defines the interface for outbound transactional mail
type Mailer interface {
	SendPasswordReset(to, resetLink string) error
}

type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSMTPMailer creates a new SMTP mailer instance
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) Mailer {
	return &smtpMailer{
		host:     cfg.EmailHost,
		port:     int(cfg.EmailPort),
		username: cfg.EmailSender,
		password: cfg.EmailPassword,
		from:     cfg.EmailSender,
		logger:   logger,
	}
}

func (m *smtpMailer) SendPasswordReset(to, resetLink string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject("Reset Your Password")
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(`
		<div>
			<p>Dear user,</p>
			<p>Your password reset link:</p>
			<p><a href=%q><button>Reset Password</button></a></p>
		</div>
	`, resetLink))

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.username),
		gomail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("📧 [Mailer] Password reset email sent", "to", to)
	return nil
}
