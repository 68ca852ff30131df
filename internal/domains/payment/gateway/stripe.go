package gateway

import (
	"context"
	"fmt"
	"math"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/shared/constant"

	"github.com/stripe/stripe-go/v82"
)

type stripeGateway struct {
	client   *stripe.Client
	currency string
	otel     otel.Otel
}

// NewStripe builds the hosted card checkout gateway.
func NewStripe(cfg *config.Config, otel otel.Otel) Gateway {
	return &stripeGateway{
		client:   stripe.NewClient(cfg.Payment.Stripe.SecretKey),
		currency: cfg.Payment.Currency,
		otel:     otel,
	}
}

func (g *stripeGateway) Method() Method {
	return MethodCard
}

func (g *stripeGateway) Initiate(ctx context.Context, req InitiateRequest) (res InitiateResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.CheckoutSessionCreateParams{
		SuccessURL: stripe.String(req.ReturnURL),
		CancelURL:  stripe.String(req.CancelURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					// Stripe expects the amount in the smallest currency unit.
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(req.Reference),
	}

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	session, err := g.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return res, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}

	return InitiateResponse{
		RedirectURL:   session.URL,
		TransactionID: session.ID,
	}, nil
}

func (g *stripeGateway) Verify(ctx context.Context, transactionID string) (res VerifyResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := g.client.V1CheckoutSessions.Retrieve(ctx, transactionID, &stripe.CheckoutSessionRetrieveParams{})
	if err != nil {
		return res, fmt.Errorf("failed to retrieve stripe checkout session: %w", err)
	}

	return VerifyResult{
		Paid:          session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		TransactionID: session.ID,
		Amount:        float64(session.AmountTotal) / 100,
	}, nil
}
