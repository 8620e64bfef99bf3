package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ppiankov/rssmon/internal/config"
)

func testMailConfig() *config.Config {
	return &config.Config{
		Subject:  "New items",
		From:     "bot@example.com",
		To:       "ops@example.com",
		Password: "hunter2",
		Server:   "smtp.example.com",
	}
}

func TestMessageHeadersAndBody(t *testing.T) {
	m := NewSMTPMailer(testMailConfig())

	var buf bytes.Buffer
	if _, err := m.message("<p>one new item</p>").WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	raw := buf.String()

	for _, want := range []string{
		"From: bot@example.com",
		"To: ops@example.com",
		"Subject: New items",
		"Content-Type: text/html; charset=UTF-8",
		"<p>one new item</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}
}

func TestDialerPinsPlainAuth(t *testing.T) {
	m := NewSMTPMailer(testMailConfig())

	if m.dialer.Host != "smtp.example.com" {
		t.Errorf("host = %q, want smtp.example.com", m.dialer.Host)
	}
	if m.dialer.Port != smtpPort {
		t.Errorf("port = %d, want %d", m.dialer.Port, smtpPort)
	}
	if m.dialer.Auth == nil {
		t.Error("auth mechanism should be pinned, not negotiated")
	}
}
