package mailer

import (
	"errors"
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when no SMTP username is set; sending is
// impossible and callers should surface a configuration error.
var ErrNotConfigured = errors.New("SMTP_USERNAME not configured")

// Mailer sends notification emails over SMTP with STARTTLS. When a username is
// configured but the password is absent it runs in dry-run mode: the intended
// email is logged and nothing is transmitted (demo deployments).
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
}

func New(host string, port int, username, password string) *Mailer {
	return &Mailer{Host: host, Port: port, Username: username, Password: password}
}

// Send transmits a single HTML email to the given address.
func (m *Mailer) Send(subject, htmlBody, to string) error {
	if m.Username == "" {
		return ErrNotConfigured
	}

	if m.Password == "" {
		log.Printf("Email would be sent to %s: %s", to, subject)
		log.Printf("Email body: %s...", truncate(htmlBody, 200))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	// Port 587: the dialer connects in plaintext and upgrades via STARTTLS
	// before authenticating.
	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent successfully to %s", to)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
