package mailer

import (
	"context"
	"fmt"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun is the Sender backed by the Mailgun HTTP API.
type Mailgun struct {
	client *mg.MailgunImpl
	From   string
	// Tags are attached to every message for Mailgun analytics.
	Tags []string
}

var _ Sender = (*Mailgun)(nil)

// NewMailgun builds a sender for domain. apiBase selects the region endpoint
// (for example mg.APIBaseEU); empty keeps the library default.
func NewMailgun(domain, apiKey, apiBase, from string) *Mailgun {
	client := mg.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	return &Mailgun{client: client, From: from, Tags: []string{"transactional"}}
}

// Send delivers one message. The caller bounds the request through ctx.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.From, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	if len(m.Tags) > 0 {
		if err := msg.AddTag(m.Tags...); err != nil {
			return fmt.Errorf("mailgun tag: %w", err)
		}
	}
	if _, _, err := m.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send to %s: %w", to, err)
	}
	return nil
}
