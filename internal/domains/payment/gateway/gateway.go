// Package gateway abstracts the payment providers behind a single interface
// so the payment service never branches on provider-specific code.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/shared/failure"
)

type Method string

const (
	MethodCard     Method = "card"
	MethodPayPal   Method = "paypal"
	MethodMonetbil Method = "monetbil"
	MethodCinetPay Method = "cinetpay"
)

func ParseMethod(raw string) (Method, error) {
	switch Method(raw) {
	case MethodCard, MethodPayPal, MethodMonetbil, MethodCinetPay:
		return Method(raw), nil
	default:
		return "", failure.BadRequestFromString(fmt.Sprintf("unsupported payment method: %s", raw)) // nolint:wrapcheck
	}
}

// InitiateRequest carries everything a provider needs to open a checkout.
type InitiateRequest struct {
	Reference     string
	Description   string
	Amount        float64
	Currency      string
	CustomerEmail string
	CustomerPhone string
	// Channel narrows mobile money providers to a specific carrier,
	// e.g. CinetPay's ORANGE_MONEY_CI or MTN_MONEY_CI.
	Channel   string
	ReturnURL string
	CancelURL string
	NotifyURL string
}

type InitiateResponse struct {
	// RedirectURL is where the guest completes the payment.
	RedirectURL   string
	TransactionID string
}

type VerifyResult struct {
	Paid          bool
	TransactionID string
	Amount        float64
}

type Gateway interface {
	Method() Method
	Initiate(ctx context.Context, req InitiateRequest) (InitiateResponse, error)
	Verify(ctx context.Context, transactionID string) (VerifyResult, error)
}

// Registry resolves a gateway from its method.
type Registry struct {
	gateways map[Method]Gateway
}

func NewRegistry(gateways ...Gateway) *Registry {
	reg := &Registry{gateways: make(map[Method]Gateway, len(gateways))}
	for _, gw := range gateways {
		reg.gateways[gw.Method()] = gw
	}

	return reg
}

func (r *Registry) Resolve(method Method) (Gateway, error) {
	gw, ok := r.gateways[method]
	if !ok {
		return nil, failure.BadRequestFromString(fmt.Sprintf("unsupported payment method: %s", method)) // nolint:wrapcheck
	}

	return gw, nil
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.Payment.TimeoutSeconds) * time.Second}
}

// NewGateways wires every configured provider. Used by the injector.
func NewGateways(cfg *config.Config, otel otel.Otel) *Registry {
	return NewRegistry(
		NewStripe(cfg, otel),
		NewPayPal(cfg, otel),
		NewMonetbil(cfg, otel),
		NewCinetPay(cfg, otel),
	)
}
