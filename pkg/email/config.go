package email

import (
	"time"

	"github.com/medera/medera_backend/config"
)

// Config controls the SMTP client. When Enabled is false the client is a
// no-op that returns ErrDisabled, which keeps local development working
// without a mail server.
type Config struct {
	Enabled bool
	From    string
	SMTP    SMTPConfig
}

type SMTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	UseTLS         bool
	TimeoutSeconds int
}

func DefaultConfig() Config {
	return Config{
		SMTP: SMTPConfig{
			Port:           587,
			UseTLS:         true,
			TimeoutSeconds: 30,
		},
	}
}

// Timeout converts the configured seconds, guarding against zero and
// negative values from a sparse config file.
func (s SMTPConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func FromCentralConfig(c config.EmailConfig) Config {
	return Config{
		Enabled: c.Enabled,
		From:    c.From,
		SMTP: SMTPConfig{
			Host:           c.SMTP.Host,
			Port:           c.SMTP.Port,
			Username:       c.SMTP.Username,
			Password:       c.SMTP.Password,
			UseTLS:         c.SMTP.UseTLS,
			TimeoutSeconds: c.SMTP.TimeoutSeconds,
		},
	}
}
