package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Notifier delivers a formatted message to a recipient. Services build
// the HTML body; transport is this package's concern.
type Notifier interface {
	Send(to, subject, htmlBody string) error
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SMTPNotifier struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", n.cfg.FromName, n.cfg.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	return smtp.SendMail(addr, auth, n.cfg.FromEmail, []string{to}, []byte(b.String()))
}

// Noop discards messages. Used in tests and when SMTP is not configured.
type Noop struct{}

func (Noop) Send(to, subject, htmlBody string) error { return nil }
