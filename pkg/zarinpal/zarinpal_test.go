package zarinpal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		merchantID:  "test-merchant",
		baseURL:     srv.URL,
		startPayURL: "https://gateway.example/StartPay/",
		httpClient:  srv.Client(),
	}
}

func respond(t *testing.T, w http.ResponseWriter, data gatewayData) {
	t.Helper()
	if err := json.NewEncoder(w).Encode(gatewayResponse{Data: data}); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestRequestPayment(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payment/request.json" {
			t.Errorf("path = %s, want /payment/request.json", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["merchant_id"] != "test-merchant" {
			t.Errorf("merchant_id = %v", body["merchant_id"])
		}
		if body["amount"] != float64(500000) {
			t.Errorf("amount = %v, want 500000", body["amount"])
		}
		respond(t, w, gatewayData{Code: 100, Authority: "A0001"})
	})

	authority, payURL, err := c.RequestPayment(context.Background(), 500000, "IRR", "consultation", "https://medera.example/callback")
	if err != nil {
		t.Fatalf("RequestPayment: %v", err)
	}
	if authority != "A0001" {
		t.Errorf("authority = %s, want A0001", authority)
	}
	if payURL != "https://gateway.example/StartPay/A0001" {
		t.Errorf("payURL = %s", payURL)
	}
}

func TestRequestPayment_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    gatewayData
		wantErr error
	}{
		{"validation", gatewayData{Code: -9}, ErrValidation},
		{"unknown code", gatewayData{Code: -11, Message: "invalid merchant"}, ErrUnexpectedResponse},
		{"success without authority", gatewayData{Code: 100}, ErrUnexpectedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				respond(t, w, tt.data)
			})
			_, _, err := c.RequestPayment(context.Background(), 1000, "IRR", "x", "https://cb.example")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyPayment(t *testing.T) {
	tests := []struct {
		name        string
		data        gatewayData
		wantErr     error
		wantRefID   int64
		wantAlready bool
	}{
		{"verified", gatewayData{Code: 100, RefID: 42, CardPan: "502229******1234"}, nil, 42, false},
		{"already verified", gatewayData{Code: 101, RefID: 42}, nil, 42, true},
		{"amount mismatch", gatewayData{Code: -50}, ErrAmountMismatch, 0, false},
		{"session failed", gatewayData{Code: -51}, ErrPaymentFailed, 0, false},
		{"invalid authority", gatewayData{Code: -54}, ErrInvalidAuthority, 0, false},
		{"authority not found", gatewayData{Code: -55}, ErrAuthorityNotFound, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/payment/verify.json" {
					t.Errorf("path = %s, want /payment/verify.json", r.URL.Path)
				}
				respond(t, w, tt.data)
			})
			refID, _, already, err := c.VerifyPayment(context.Background(), "A0001", 500000)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyPayment: %v", err)
			}
			if refID != tt.wantRefID || already != tt.wantAlready {
				t.Errorf("refID = %d already = %v, want %d %v", refID, already, tt.wantRefID, tt.wantAlready)
			}
		})
	}
}
