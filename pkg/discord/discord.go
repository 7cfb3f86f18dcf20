package discord

import (
	"context"
	"fmt"
	"time"

	pkgHTTP "skyscore-srv/pkg/http"
)

const (
	colorRed    = 0xE74C3C
	colorOrange = 0xE67E22
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}

	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   d.config.Timeout,
		Retries:   1,
		RetryWait: time.Second,
	})

	body, status, err := client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		return fmt.Errorf("discord: webhook request failed: %w", err)
	}
	if status >= 400 {
		return fmt.Errorf("discord: webhook returned %d: %s", status, string(body))
	}
	return nil
}

// SendMessage posts a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content})
}

// SendError posts an error embed with the wrapped error as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorRed,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.send(ctx, WebhookPayload{Embeds: []Embed{embed}})
}

// ReportBug posts an orange bug-report embed.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, WebhookPayload{Embeds: []Embed{{
		Title:       "Bug Report",
		Description: message,
		Color:       colorOrange,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}}})
}

// GetWebhookURL returns the webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return d.webhookURL()
}

// Close is a no-op; the notifier holds no persistent connection.
func (d *discordImpl) Close() error {
	return nil
}
