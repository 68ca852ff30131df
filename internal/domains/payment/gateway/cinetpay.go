package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/shared/constant"
)

type cinetpayGateway struct {
	baseURL  string
	apiKey   string
	siteID   string
	currency string
	client   *http.Client
	otel     otel.Otel
}

// NewCinetPay builds the CinetPay mobile money gateway.
func NewCinetPay(cfg *config.Config, otel otel.Otel) Gateway {
	return &cinetpayGateway{
		baseURL:  strings.TrimRight(cfg.Payment.CinetPay.BaseURL, "/"),
		apiKey:   cfg.Payment.CinetPay.APIKey,
		siteID:   cfg.Payment.CinetPay.SiteID,
		currency: cfg.Payment.Currency,
		client:   newHTTPClient(cfg),
		otel:     otel,
	}
}

func (g *cinetpayGateway) Method() Method {
	return MethodCinetPay
}

type cinetpayPaymentRequest struct {
	APIKey              string  `json:"apikey"`
	SiteID              string  `json:"site_id"`
	TransactionID       string  `json:"transaction_id"`
	Amount              float64 `json:"amount"`
	Currency            string  `json:"currency"`
	Description         string  `json:"description"`
	Channels            string  `json:"channels"`
	ReturnURL           string  `json:"return_url"`
	NotifyURL           string  `json:"notify_url"`
	CustomerEmail       string  `json:"customer_email"`
	CustomerPhoneNumber string  `json:"customer_phone_number"`
}

type cinetpayPaymentResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		PaymentURL    string `json:"payment_url"`
		PaymentToken  string `json:"payment_token"`
		TransactionID string `json:"transaction_id"`
	} `json:"data"`
}

func (g *cinetpayGateway) Initiate(ctx context.Context, req InitiateRequest) (res InitiateResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".cinetpay.Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	// MOBILE_MONEY is CinetPay's umbrella channel; a carrier-specific
	// value from the caller narrows it.
	channels := "MOBILE_MONEY"
	if req.Channel != "" {
		channels = req.Channel
	}

	payload := cinetpayPaymentRequest{
		APIKey:              g.apiKey,
		SiteID:              g.siteID,
		TransactionID:       req.Reference,
		Amount:              req.Amount,
		Currency:            currency,
		Description:         req.Description,
		Channels:            channels,
		ReturnURL:           req.ReturnURL,
		NotifyURL:           req.NotifyURL,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhoneNumber: req.CustomerPhone,
	}

	var created cinetpayPaymentResponse

	if err = g.doJSON(ctx, g.baseURL+"/v2/payment", payload, &created); err != nil {
		return res, err
	}

	if created.Code != "201" || created.Data.PaymentURL == "" {
		return res, fmt.Errorf("cinetpay error: %s", created.Message)
	}

	transactionID := created.Data.TransactionID
	if transactionID == "" {
		transactionID = req.Reference
	}

	return InitiateResponse{
		RedirectURL:   created.Data.PaymentURL,
		TransactionID: transactionID,
	}, nil
}

type cinetpayCheckResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
		Amount string `json:"amount"`
	} `json:"data"`
}

func (g *cinetpayGateway) Verify(ctx context.Context, transactionID string) (res VerifyResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".cinetpay.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := map[string]string{
		"apikey":         g.apiKey,
		"site_id":        g.siteID,
		"transaction_id": transactionID,
	}

	var checked cinetpayCheckResponse

	if err = g.doJSON(ctx, g.baseURL+"/v2/payment/check", payload, &checked); err != nil {
		return res, err
	}

	return VerifyResult{
		Paid:          checked.Code == "00" && checked.Data.Status == "ACCEPTED",
		TransactionID: transactionID,
	}, nil
}

func (g *cinetpayGateway) doJSON(ctx context.Context, url string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal cinetpay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build cinetpay request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call cinetpay: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode cinetpay response: %w", err)
	}

	return nil
}
