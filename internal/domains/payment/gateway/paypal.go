package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/shared/constant"
)

type paypalGateway struct {
	baseURL      string
	clientID     string
	clientSecret string
	currency     string
	client       *http.Client
	otel         otel.Otel
}

func NewPayPal(cfg *config.Config, otel otel.Otel) Gateway {
	return &paypalGateway{
		baseURL:      strings.TrimRight(cfg.Payment.PayPal.BaseURL, "/"),
		clientID:     cfg.Payment.PayPal.ClientID,
		clientSecret: cfg.Payment.PayPal.ClientSecret,
		currency:     cfg.Payment.Currency,
		client:       newHTTPClient(cfg),
		otel:         otel,
	}
}

func (g *paypalGateway) Method() Method {
	return MethodPayPal
}

type paypalOrderRequest struct {
	Intent             string               `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit `json:"purchase_units"`
	ApplicationContext paypalAppContext     `json:"application_context"`
}

type paypalPurchaseUnit struct {
	ReferenceID string       `json:"reference_id"`
	Description string       `json:"description"`
	Amount      paypalAmount `json:"amount"`
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalAppContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type paypalOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
	PurchaseUnits []struct {
		Amount paypalAmount `json:"amount"`
	} `json:"purchase_units"`
	Message string `json:"message"`
}

func (g *paypalGateway) Initiate(ctx context.Context, req InitiateRequest) (res InitiateResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paypal.Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	accessToken, err := g.accessToken(ctx)
	if err != nil {
		return res, err
	}

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	order := paypalOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{
			{
				ReferenceID: req.Reference,
				Description: req.Description,
				Amount: paypalAmount{
					CurrencyCode: currency,
					Value:        fmt.Sprintf("%.2f", req.Amount),
				},
			},
		},
		ApplicationContext: paypalAppContext{
			ReturnURL: req.ReturnURL,
			CancelURL: req.CancelURL,
		},
	}

	var created paypalOrderResponse

	err = g.doJSON(ctx, http.MethodPost, g.baseURL+"/v2/checkout/orders", accessToken, order, &created)
	if err != nil {
		return res, err
	}

	approveURL := ""
	for _, link := range created.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
		}
	}

	if approveURL == "" {
		return res, fmt.Errorf("paypal order %s has no approval link", created.ID)
	}

	return InitiateResponse{
		RedirectURL:   approveURL,
		TransactionID: created.ID,
	}, nil
}

func (g *paypalGateway) Verify(ctx context.Context, transactionID string) (res VerifyResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paypal.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	accessToken, err := g.accessToken(ctx)
	if err != nil {
		return res, err
	}

	var order paypalOrderResponse

	err = g.doJSON(ctx, http.MethodGet, g.baseURL+"/v2/checkout/orders/"+transactionID, accessToken, nil, &order)
	if err != nil {
		return res, err
	}

	// An approved order still needs a capture before the money moves.
	if order.Status == "APPROVED" {
		err = g.doJSON(ctx, http.MethodPost, g.baseURL+"/v2/checkout/orders/"+transactionID+"/capture", accessToken, struct{}{}, &order)
		if err != nil {
			return res, err
		}
	}

	amount := 0.0
	if len(order.PurchaseUnits) > 0 {
		amount, _ = strconv.ParseFloat(order.PurchaseUnits[0].Amount.Value, 64)
	}

	return VerifyResult{
		Paid:          order.Status == "COMPLETED",
		TransactionID: order.ID,
		Amount:        amount,
	}, nil
}

func (g *paypalGateway) accessToken(ctx context.Context) (string, error) {
	body := strings.NewReader("grant_type=client_credentials")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", body)
	if err != nil {
		return "", fmt.Errorf("failed to build paypal token request: %w", err)
	}

	httpReq.SetBasicAuth(g.clientID, g.clientSecret)
	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to request paypal token: %w", err)
	}
	defer resp.Body.Close()

	var token struct {
		AccessToken      string `json:"access_token"`
		ErrorDescription string `json:"error_description"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode paypal token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || token.AccessToken == "" {
		return "", fmt.Errorf("paypal token error: %s", token.ErrorDescription)
	}

	return token.AccessToken, nil
}

func (g *paypalGateway) doJSON(ctx context.Context, method, url, accessToken string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal paypal request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build paypal request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+accessToken)
	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call paypal: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode paypal response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if order, ok := out.(*paypalOrderResponse); ok && order.Message != "" {
			return fmt.Errorf("paypal error: %s", order.Message)
		}

		return fmt.Errorf("paypal error: unexpected status %d", resp.StatusCode)
	}

	return nil
}
