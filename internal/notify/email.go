package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// EmailSink delivers fired notifications as emails via SMTP. This is the
// delivery channel that replaces the mobile push surface for a headless
// runtime.
type EmailSink struct {
	From     string
	To       string
	Host     string
	Port     string
	Username string
	Password string
}

var _ Sink = (*EmailSink)(nil)

// Deliver sends the notification as an email. Failure is logged only;
// reminder delivery is best-effort.
func (s *EmailSink) Deliver(id, title, body string) {
	e := email.NewEmail()
	e.From = s.From
	e.To = []string{s.To}
	e.Subject = title
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	if err := e.Send(addr, auth); err != nil {
		slog.Error("Failed to send reminder email", "record_id", id, "error", err)
		return
	}

	slog.Info("Reminder email sent", "record_id", id, "subject", title)
}
