package email

import (
	"fmt"
	"net/smtp"
)

// Config holds SMTP configuration.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
}

// SMTPMailer sends HTML email over plain-auth SMTP.
type SMTPMailer struct {
	config Config
}

// NewSMTPMailer creates a mailer from the given configuration. Returns nil
// when no SMTP host is configured, which disables email delivery.
func NewSMTPMailer(config Config) *SMTPMailer {
	if config.SMTPHost == "" {
		return nil
	}
	return &SMTPMailer{config: config}
}

// Send delivers one HTML email.
func (s *SMTPMailer) Send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	message := s.buildHTMLEmail(to, subject, htmlBody)
	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message.
func (s *SMTPMailer) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}
