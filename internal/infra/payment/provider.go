package payment

import (
	"log/slog"

	"eats/config"
	"eats/internal/domain/constants"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for the payment gateway, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway creates the configured PaymentGateway
func NewPaymentGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if cfg == nil {
		return nil, errors.New("payment configuration is required")
	}

	switch cfg.Provider {
	case constants.PaymentProviderStripe:
		params.Logger.Info("Using Stripe payment gateway")

		return NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	case constants.PaymentProviderLocal, "":
		params.Logger.Info("Using local payment gateway", slog.String("checkout_url", cfg.LocalCheckoutURL))

		return NewLocalGateway(cfg.LocalCheckoutURL, cfg.LocalWebhookSecret), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}
