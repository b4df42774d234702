package mailer

import (
	"bytes"
	"html/template"
	"time"

	"gopkg.in/mail.v2"
)

type SMTPClient struct {
	dialer    *mail.Dialer
	fromEmail string
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) (*SMTPClient, error) {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPClient{
		dialer:    dialer,
		fromEmail: fromEmail,
	}, nil
}

// Send renders the named template and delivers it, retrying transient SMTP
// failures. Returns the number of attempts made.
func (c *SMTPClient) Send(templateFile, username, email string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", c.fromEmail)
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/html", body.String())

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = c.dialer.DialAndSend(msg); lastErr == nil {
			return i, nil
		}
		time.Sleep(time.Second)
	}

	return maxRetries, lastErr
}
