package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"riviera/config"
	"riviera/infras/otel/mocks"
	"riviera/internal/domains/payment/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCinetPayGateway_Initiate(t *testing.T) {
	tests := []struct {
		name         string
		channel      string
		wantChannels string
	}{
		{
			name:         "orange money carrier",
			channel:      "ORANGE_MONEY_CI",
			wantChannels: "ORANGE_MONEY_CI",
		},
		{
			name:         "mtn money carrier",
			channel:      "MTN_MONEY_CI",
			wantChannels: "MTN_MONEY_CI",
		},
		{
			name:         "no carrier falls back to the umbrella channel",
			channel:      "",
			wantChannels: "MOBILE_MONEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received struct {
				APIKey        string  `json:"apikey"`
				SiteID        string  `json:"site_id"`
				TransactionID string  `json:"transaction_id"`
				Amount        float64 `json:"amount"`
				Currency      string  `json:"currency"`
				Channels      string  `json:"channels"`
				NotifyURL     string  `json:"notify_url"`
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/v2/payment", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"code": "201",
					"message": "CREATED",
					"data": {
						"payment_url": "https://checkout.cinetpay.com/pay/abc",
						"payment_token": "tok",
						"transaction_id": "booking_33333333"
					}
				}`))
			}))
			defer server.Close()

			cfg := &config.Config{}
			cfg.Payment.Currency = "XOF"
			cfg.Payment.TimeoutSeconds = 5
			cfg.Payment.CinetPay.BaseURL = server.URL
			cfg.Payment.CinetPay.APIKey = "test-api-key"
			cfg.Payment.CinetPay.SiteID = "test-site-id"

			gw := gateway.NewCinetPay(cfg, mocks.NewOtel())

			res, err := gw.Initiate(context.Background(), gateway.InitiateRequest{
				Reference:     "booking_33333333",
				Description:   "Hotel booking for Ocean Suite",
				Amount:        1341,
				Currency:      "XOF",
				CustomerEmail: "ama@example.com",
				CustomerPhone: "+22501234567",
				Channel:       tt.channel,
				NotifyURL:     "https://riviera.example.com/v1/payments/finalize",
			})

			require.NoError(t, err)
			assert.Equal(t, "https://checkout.cinetpay.com/pay/abc", res.RedirectURL)
			assert.Equal(t, "booking_33333333", res.TransactionID)

			assert.Equal(t, tt.wantChannels, received.Channels)
			assert.Equal(t, "test-api-key", received.APIKey)
			assert.Equal(t, "test-site-id", received.SiteID)
			assert.Equal(t, float64(1341), received.Amount)
			assert.Equal(t, "https://riviera.example.com/v1/payments/finalize", received.NotifyURL)
		})
	}
}

func TestCinetPayGateway_Verify(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPaid bool
	}{
		{
			name:     "accepted charge",
			body:     `{"code":"00","message":"SUCCES","data":{"status":"ACCEPTED","amount":"1341"}}`,
			wantPaid: true,
		},
		{
			name:     "refused charge",
			body:     `{"code":"600","message":"PAYMENT_FAILED","data":{"status":"REFUSED","amount":"1341"}}`,
			wantPaid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/v2/payment/check", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			cfg := &config.Config{}
			cfg.Payment.TimeoutSeconds = 5
			cfg.Payment.CinetPay.BaseURL = server.URL
			cfg.Payment.CinetPay.APIKey = "test-api-key"
			cfg.Payment.CinetPay.SiteID = "test-site-id"

			gw := gateway.NewCinetPay(cfg, mocks.NewOtel())

			res, err := gw.Verify(context.Background(), "booking_33333333")

			require.NoError(t, err)
			assert.Equal(t, tt.wantPaid, res.Paid)
			assert.Equal(t, "booking_33333333", res.TransactionID)
		})
	}
}
