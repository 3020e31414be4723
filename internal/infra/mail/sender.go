package mail

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type PreviewSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewPreviewSender(host string, port int, user, password, from string) *PreviewSender {
	return &PreviewSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendPreview delivers one generated variant to a real inbox. The subject is
// prefixed so a preview is never mistaken for the campaign itself.
func (s *PreviewSender) SendPreview(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("[Preview] %s", subject))
	m.SetBody("text/html", toHTML(body))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send preview over SMTP: %w", err)
	}

	return nil
}

// toHTML keeps the generated plain-text paragraphs readable in mail clients.
func toHTML(body string) string {
	var b strings.Builder
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(line)
		b.WriteString("<br>")
	}
	return b.String()
}
