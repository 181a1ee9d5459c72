package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/medera/medera_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client     *smsir.Client
	templateID string
	enabled    bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:     client,
		templateID: cfg.SMSIR.TemplateID,
		enabled:    true,
	}, nil
}

// SendTemplate sends a templated message to the specified phone number.
// If SMS is disabled, this is a no-op and returns nil.
// Parameter keys must match the placeholders defined in the sms.ir template.
func (c *Client) SendTemplate(ctx context.Context, phoneNumber, templateID string, params map[string]string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		templateID = c.templateID
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}
	if len(params) == 0 {
		return fmt.Errorf("template parameters are required")
	}

	sendParams := make([]smsir.UltraFastParameter, 0, len(params))
	for k, v := range params {
		sendParams = append(sendParams, smsir.UltraFastParameter{Key: k, Value: v})
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phoneNumber,
		TemplateID: templateID,
		Parameters: sendParams,
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// SendAppointmentReminder sends the upcoming-appointment reminder.
// The configured template must define "doctor", "date", "time" and "ref"
// parameters; ref is the booking reference the patient quotes at the desk.
func (c *Client) SendAppointmentReminder(ctx context.Context, phoneNumber, doctorName, date, timeOfDay, bookingRef string) error {
	return c.SendTemplate(ctx, phoneNumber, c.templateID, map[string]string{
		"doctor": doctorName,
		"date":   date,
		"time":   timeOfDay,
		"ref":    bookingRef,
	})
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
