package notify

import (
	"fmt"
	"net/smtp"

	gomail "gopkg.in/gomail.v2"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/errs"
)

// smtpPort is the standard SMTP port. TLS is whatever the server offers
// via STARTTLS; there is no TLS policy knob.
const smtpPort = 25

// SMTPMailer submits one HTML message per call. The auth mechanism is
// pinned to PLAIN instead of letting the dialer negotiate one.
type SMTPMailer struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.Server, smtpPort, cfg.From, cfg.Password)
	d.Auth = smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Server)
	return &SMTPMailer{cfg: cfg, dialer: d}
}

// Send delivers body as text/html in a single attempt. Whatever fails
// underneath (dial, auth, submission) surfaces as one mail error.
func (m *SMTPMailer) Send(body string) error {
	if err := m.dialer.DialAndSend(m.message(body)); err != nil {
		return errs.Wrap(errs.KindMail, fmt.Errorf("send mail to %s: %w", m.cfg.To, err))
	}
	return nil
}

func (m *SMTPMailer) message(body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", m.cfg.Subject)
	msg.SetBody("text/html", body)
	return msg
}
