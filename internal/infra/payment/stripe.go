// Package payment implements hosted-checkout PaymentGateways.
package payment

import (
	"context"
	"encoding/json"

	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// stripeGateway opens Stripe hosted checkout sessions.
type stripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a gateway authenticated with secretKey.
func NewStripeGateway(secretKey, webhookSecret string) (service.PaymentGateway, error) {
	if secretKey == "" {
		return nil, errors.New("payment.stripeSecretKey is required for stripe provider")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &stripeGateway{api: api, webhookSecret: webhookSecret}, nil
}

// toMinorUnits converts an amount to the smallest currency unit.
func toMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

func fromMinorUnits(amount int64) float64 {
	return decimal.New(amount, -2).InexactFloat64()
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: req.Metadata,
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe create checkout session")
	}

	return toCheckoutSession(sess), nil
}

func (g *stripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe get checkout session")
	}

	return toCheckoutSession(sess), nil
}

func (g *stripeGateway) ParseWebhook(payload []byte, signature string) (*service.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrWebhookSignature, err.Error())
	}

	out := &service.WebhookEvent{ID: event.ID, Type: string(event.Type)}

	if event.Data != nil && len(event.Data.Raw) > 0 && service.IsCheckoutSessionEvent(out.Type) {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, errors.Wrap(err, "decode checkout session event")
		}
		out.Session = toCheckoutSession(&sess)
	}

	return out, nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) *service.CheckoutSession {
	return &service.CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   fromMinorUnits(sess.AmountTotal),
		Currency:      string(sess.Currency),
		Metadata:      sess.Metadata,
	}
}
