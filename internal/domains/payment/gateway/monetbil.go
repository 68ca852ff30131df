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

type monetbilGateway struct {
	baseURL    string
	serviceKey string
	client     *http.Client
	otel       otel.Otel
}

// NewMonetbil builds the Monetbil mobile money gateway.
func NewMonetbil(cfg *config.Config, otel otel.Otel) Gateway {
	return &monetbilGateway{
		baseURL:    strings.TrimRight(cfg.Payment.Monetbil.BaseURL, "/"),
		serviceKey: cfg.Payment.Monetbil.ServiceKey,
		client:     newHTTPClient(cfg),
		otel:       otel,
	}
}

func (g *monetbilGateway) Method() Method {
	return MethodMonetbil
}

type monetbilPlaceRequest struct {
	Service     string  `json:"service"`
	Amount      float64 `json:"amount"`
	PhoneNumber string  `json:"phonenumber"`
	ItemRef     string  `json:"item_ref"`
	Email       string  `json:"email"`
	ReturnURL   string  `json:"return_url"`
	NotifyURL   string  `json:"notify_url"`
}

type monetbilPlaceResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url"`
	PaymentRef string `json:"payment_ref"`
	Message    string `json:"message"`
}

func (g *monetbilGateway) Initiate(ctx context.Context, req InitiateRequest) (res InitiateResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".monetbil.Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := monetbilPlaceRequest{
		Service:     g.serviceKey,
		Amount:      req.Amount,
		PhoneNumber: req.CustomerPhone,
		ItemRef:     req.Reference,
		Email:       req.CustomerEmail,
		ReturnURL:   req.ReturnURL,
		NotifyURL:   req.NotifyURL,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return res, fmt.Errorf("failed to marshal monetbil request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payment/v1/placePayment", bytes.NewReader(raw))
	if err != nil {
		return res, fmt.Errorf("failed to build monetbil request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return res, fmt.Errorf("failed to call monetbil: %w", err)
	}
	defer resp.Body.Close()

	var placed monetbilPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		return res, fmt.Errorf("failed to decode monetbil response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || placed.PaymentURL == "" {
		return res, fmt.Errorf("monetbil error: %s", placed.Message)
	}

	return InitiateResponse{
		RedirectURL:   placed.PaymentURL,
		TransactionID: placed.PaymentRef,
	}, nil
}

type monetbilCheckResponse struct {
	Message     string `json:"message"`
	Transaction struct {
		Status int     `json:"status"`
		Amount float64 `json:"amount"`
	} `json:"transaction"`
}

func (g *monetbilGateway) Verify(ctx context.Context, transactionID string) (res VerifyResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".monetbil.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := map[string]string{
		"service":   g.serviceKey,
		"paymentId": transactionID,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return res, fmt.Errorf("failed to marshal monetbil request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payment/v1/checkPayment", bytes.NewReader(raw))
	if err != nil {
		return res, fmt.Errorf("failed to build monetbil request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return res, fmt.Errorf("failed to call monetbil: %w", err)
	}
	defer resp.Body.Close()

	var checked monetbilCheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&checked); err != nil {
		return res, fmt.Errorf("failed to decode monetbil response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("monetbil error: %s", checked.Message)
	}

	// Monetbil reports a settled transaction with status 1.
	return VerifyResult{
		Paid:          checked.Transaction.Status == 1,
		TransactionID: transactionID,
		Amount:        checked.Transaction.Amount,
	}, nil
}
