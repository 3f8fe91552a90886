// File: services/notification/email.go
package notification

import (
	"gopkg.in/gomail.v2"

	"miagenda/config"
)

// Mailer sends email through SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewMailer builds a mailer from the application config.
func NewMailer() *Mailer {
	cfg := config.AppConfig
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		sender: cfg.SMTPSender,
	}
}

// Send delivers a plain-text email to a single recipient.
func (m *Mailer) Send(toEmail, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
