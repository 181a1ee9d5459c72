package sms

import (
	"context"
	"testing"

	"github.com/medera/medera_backend/config"
)

func TestNewFromConfig(t *testing.T) {
	t.Run("disabled config yields disabled client", func(t *testing.T) {
		client, err := NewFromConfig(config.SMSConfig{})
		if err != nil {
			t.Fatalf("NewFromConfig: %v", err)
		}
		if client.IsEnabled() {
			t.Error("client should be disabled")
		}
	})

	t.Run("enabled without api key fails", func(t *testing.T) {
		cfg := config.SMSConfig{
			Enabled: true,
			SMSIR:   config.SMSIRConfig{TemplateID: "tpl"},
		}
		if _, err := NewFromConfig(cfg); err == nil {
			t.Error("want error for missing api key")
		}
	})

	t.Run("enabled with credentials", func(t *testing.T) {
		cfg := config.SMSConfig{
			Enabled: true,
			SMSIR: config.SMSIRConfig{
				APIKey:     "key",
				SecretKey:  "secret",
				TemplateID: "tpl",
			},
		}
		client, err := NewFromConfig(cfg)
		if err != nil {
			t.Fatalf("NewFromConfig: %v", err)
		}
		if !client.IsEnabled() {
			t.Error("client should be enabled")
		}
	})
}

func TestSendTemplate_DisabledNoOp(t *testing.T) {
	client := &Client{enabled: false}

	err := client.SendTemplate(context.Background(), "+989121234567", "tpl", map[string]string{"code": "123456"})
	if err != nil {
		t.Errorf("disabled client must no-op, got %v", err)
	}
}

func TestSendTemplate_Validation(t *testing.T) {
	client := &Client{enabled: true}

	tests := []struct {
		name       string
		phone      string
		templateID string
		params     map[string]string
	}{
		{"missing phone", "", "tpl", map[string]string{"date": "2026-01-01"}},
		{"missing template id", "+989121234567", "", map[string]string{"date": "2026-01-01"}},
		{"missing parameters", "+989121234567", "tpl", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.SendTemplate(context.Background(), tt.phone, tt.templateID, tt.params); err == nil {
				t.Error("want validation error, got nil")
			}
		})
	}
}

func TestSendAppointmentReminder_DisabledNoOp(t *testing.T) {
	client := &Client{enabled: false}

	err := client.SendAppointmentReminder(context.Background(), "+989121234567", "Dr. Moradi", "2026-09-01", "10:30", "K7TM-Q2XB")
	if err != nil {
		t.Errorf("disabled client must no-op, got %v", err)
	}
}
