// Package zarinpal is a minimal client for the ZarinPal v4 payment gateway.
package zarinpal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/medera/medera_backend/config"
)

var (
	ErrPaymentFailed      = errors.New("zarinpal: payment failed or cancelled by user")
	ErrValidation         = errors.New("zarinpal: validation error")
	ErrAmountMismatch     = errors.New("zarinpal: amount does not match original request")
	ErrInvalidAuthority   = errors.New("zarinpal: invalid authority")
	ErrAuthorityNotFound  = errors.New("zarinpal: authority not found")
	ErrUnexpectedResponse = errors.New("zarinpal: unexpected response from gateway")
)

// Gateway status codes, per the v4 API docs.
const (
	codeSuccess           = 100
	codeAlreadyVerified   = 101
	codeValidationError   = -9
	codeAmountMismatch    = -50
	codeSessionFailed     = -51
	codeInvalidAuthority  = -54
	codeAuthorityNotFound = -55
)

type Client struct {
	merchantID  string
	baseURL     string
	startPayURL string
	httpClient  *http.Client
}

// New builds a Client. Sandbox mode points at the test gateway, which
// accepts any merchant ID.
func New(cfg config.ZarinPalConfig) *Client {
	baseURL := "https://payment.zarinpal.com/pg/v4"
	startPayURL := "https://payment.zarinpal.com/pg/StartPay/"
	if cfg.Sandbox {
		baseURL = "https://sandbox.zarinpal.com/pg/v4"
		startPayURL = "https://sandbox.zarinpal.com/pg/StartPay/"
	}
	return &Client{
		merchantID:  cfg.MerchantID,
		baseURL:     baseURL,
		startPayURL: startPayURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type gatewayData struct {
	Code      int    `json:"code"`
	Authority string `json:"authority"`
	RefID     int64  `json:"ref_id"`
	CardPan   string `json:"card_pan"`
	Fee       int    `json:"fee"`
	Message   string `json:"message"`
}

type gatewayResponse struct {
	Data   gatewayData `json:"data"`
	Errors any         `json:"errors"`
}

// RequestPayment registers a payment with the gateway and returns the
// authority plus the page URL to redirect the payer to. amount is in the
// given currency unit ("IRR" rials or "IRT" tomans).
func (c *Client) RequestPayment(ctx context.Context, amount int64, currency, desc, callbackURL string) (authority string, payURL string, err error) {
	var resp gatewayResponse
	err = c.post(ctx, "/payment/request.json", map[string]any{
		"merchant_id":  c.merchantID,
		"amount":       amount,
		"currency":     currency,
		"description":  desc,
		"callback_url": callbackURL,
	}, &resp)
	if err != nil {
		return "", "", fmt.Errorf("zarinpal request: %w", err)
	}

	switch resp.Data.Code {
	case codeSuccess:
	case codeValidationError:
		return "", "", ErrValidation
	default:
		return "", "", fmt.Errorf("%w (code=%d, msg=%s)", ErrUnexpectedResponse, resp.Data.Code, resp.Data.Message)
	}

	if resp.Data.Authority == "" {
		return "", "", ErrUnexpectedResponse
	}
	return resp.Data.Authority, c.startPayURL + resp.Data.Authority, nil
}

// VerifyPayment settles a payment after the payer returns from the
// gateway. alreadyVerified reports the idempotent code 101, which callers
// must treat as success without acting on it twice.
func (c *Client) VerifyPayment(ctx context.Context, authority string, amount int64) (refID int64, cardPan string, alreadyVerified bool, err error) {
	var resp gatewayResponse
	err = c.post(ctx, "/payment/verify.json", map[string]any{
		"merchant_id": c.merchantID,
		"amount":      amount,
		"authority":   authority,
	}, &resp)
	if err != nil {
		return 0, "", false, fmt.Errorf("zarinpal verify: %w", err)
	}

	switch resp.Data.Code {
	case codeSuccess:
		return resp.Data.RefID, resp.Data.CardPan, false, nil
	case codeAlreadyVerified:
		return resp.Data.RefID, resp.Data.CardPan, true, nil
	case codeValidationError:
		return 0, "", false, ErrValidation
	case codeAmountMismatch:
		return 0, "", false, ErrAmountMismatch
	case codeSessionFailed:
		return 0, "", false, ErrPaymentFailed
	case codeInvalidAuthority:
		return 0, "", false, ErrInvalidAuthority
	case codeAuthorityNotFound:
		return 0, "", false, ErrAuthorityNotFound
	default:
		return 0, "", false, fmt.Errorf("%w (code=%d, msg=%s)", ErrUnexpectedResponse, resp.Data.Code, resp.Data.Message)
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
