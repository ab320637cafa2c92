// Package mail renders and delivers transactional email.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/iliyamo/acara-ticketing/internal/queue"
)

// Message is one outgoing mail.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTML     string
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SendGridSender delivers through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
}

// NewSendGridSender returns a sender authenticated with apiKey.
func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

// Send implements Sender.  Any non-2xx answer is an error.
func (s *SendGridSender) Send(ctx context.Context, m Message) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.FromName, m.From),
		m.Subject,
		sgmail.NewEmail("", m.To),
		"",
		m.HTML,
	)
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ErrNoSender is returned when mail delivery is not configured.
var ErrNoSender = errors.New("mail: no sender configured")

const registrationSubject = "Aktivasi Akun Anda"

// Notifier turns domain events into mails.
type Notifier struct {
	sender   Sender
	renderer *Renderer
	from     string
	fromName string
}

// NewNotifier builds a Notifier.  A nil sender makes every send fail with
// ErrNoSender.
func NewNotifier(sender Sender, renderer *Renderer, from, fromName string) *Notifier {
	return &Notifier{sender: sender, renderer: renderer, from: from, fromName: fromName}
}

// UserRegistered mails the activation link to the new user.
func (n *Notifier) UserRegistered(ctx context.Context, ev queue.UserRegisteredEvent) error {
	if n.sender == nil {
		return ErrNoSender
	}
	html, err := n.renderer.Render("registration-success", ev)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Message{
		From:     n.from,
		FromName: n.fromName,
		To:       ev.Email,
		Subject:  registrationSubject,
		HTML:     html,
	})
}
