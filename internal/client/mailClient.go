package client

import (
	"context"
	"fmt"
	"freshpack-backend/internal/config"
	"net/http"

	"github.com/keighl/postmark"
)

type MailClient interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type postmarkMailClient struct {
	client *postmark.Client
	sender string
}

// NewMailClient returns a Postmark-backed client, or a no-op one when no
// server token is configured.
func NewMailClient(cfg *config.Postmark) MailClient {
	if !cfg.Enabled() {
		return noopMailClient{}
	}

	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	client.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}

	return &postmarkMailClient{
		client: client,
		sender: cfg.Sender,
	}
}

func (c *postmarkMailClient) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := c.client.SendEmail(postmark.Email{
		From:     c.sender,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: textBody,
	})
	if err != nil {
		return fmt.Errorf("postmark send email: %w", err)
	}
	return nil
}

type noopMailClient struct{}

func (noopMailClient) Send(context.Context, string, string, string, string) error {
	return nil
}
