// Package mail delivers transactional notifications.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
)

// Message is one outgoing email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Receipt identifies an accepted message at the provider.
type Receipt struct {
	ID string `json:"id"`
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

// ResendSender delivers through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender returns a Resend-backed sender, or nil when apiKey is empty.
func NewResendSender(apiKey string) *ResendSender {
	if apiKey == "" {
		return nil
	}
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return nil, fmt.Errorf("resend: %w", err)
	}
	return &Receipt{ID: sent.Id}, nil
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<p><strong>이름:</strong> {{.Name}}</p>
<p><strong>이메일:</strong> {{.Email}}</p>
<p><strong>문의내용:</strong><br/>{{.Message}}</p>
`))

// Notification is the body of a contact or inquiry alert.
type Notification struct {
	Name    string
	Email   string
	Message string
}

// Render produces the HTML body with every field escaped.
func (n Notification) Render() (string, error) {
	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
