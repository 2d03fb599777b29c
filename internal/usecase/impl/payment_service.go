package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const checkoutProductName = "Dushanbe Eats Order"

type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	rate        decimal.Decimal
	currency    string
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) (usecase.PaymentUsecase, error) {
	rateText, currency := "10.9", "usd"
	if params.Config != nil && params.Config.Payment != nil {
		cfg := params.Config.Payment
		if cfg.ExchangeRate != "" {
			rateText = cfg.ExchangeRate
		}
		if cfg.Currency != "" {
			currency = strings.ToLower(cfg.Currency)
		}
	}

	rate, err := decimal.NewFromString(rateText)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid payment.exchangeRate %q", rateText)
	}
	if !rate.IsPositive() {
		return nil, errors.Errorf("payment.exchangeRate must be positive, got %s", rateText)
	}

	return &paymentService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		rate:        rate,
		currency:    currency,
		logger:      params.Logger,
	}, nil
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckout opens a hosted checkout session for an unpaid order of the user.
func (srv *paymentService) CreateCheckout(ctx context.Context, userID, orderID uuid.UUID, originURL string) (*usecase.CheckoutOutput, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, domainerrors.ErrOrderAlreadyPaid
	}

	origin := strings.TrimRight(originURL, "/")
	amount := entity.ConvertMoney(order.Total, srv.rate)
	metadata := map[string]string{
		"order_id": order.ID.String(),
		"user_id":  userID.String(),
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutRequest{
		OrderID:     order.ID,
		UserID:      userID,
		Amount:      amount,
		Currency:    srv.currency,
		ProductName: checkoutProductName,
		SuccessURL:  origin + "/orders/" + order.ID.String() + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/checkout",
		Metadata:    metadata,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.String("order_id", order.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentProvider, err.Error())
	}

	now := time.Now()
	transaction := &entity.PaymentTransaction{
		ID:            uuid.New(),
		SessionID:     session.ID,
		UserID:        userID,
		OrderID:       order.ID,
		Amount:        amount,
		Currency:      srv.currency,
		Status:        entity.TransactionStatusInitiated,
		PaymentStatus: string(entity.PaymentStatusPending),
		Metadata:      map[string]string{"order_id": order.ID.String()},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PaymentRepo().Create(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to record payment transaction")
		}

		if err := repoFactory.OrderRepo().SetPaymentSession(ctx, order.ID, session.ID); err != nil {
			return errors.Wrap(err, "failed to attach payment session to order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("order_id", order.ID.String()),
		slog.String("session_id", session.ID),
		slog.Float64("amount", amount),
		slog.String("currency", srv.currency),
	)

	return &usecase.CheckoutOutput{URL: session.URL, SessionID: session.ID}, nil
}

// GetStatus polls the provider, mirrors its status and reconciles a paid session.
func (srv *paymentService) GetStatus(ctx context.Context, userID uuid.UUID, sessionID string) (*usecase.PaymentStatusOutput, error) {
	transaction, err := srv.paymentRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction")
	}

	if transaction.UserID != userID {
		return nil, domainerrors.ErrPaymentNotFound
	}

	session, err := srv.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentProvider, err.Error())
	}

	if session.PaymentStatus == service.CheckoutPaymentStatusPaid {
		if err := srv.markPaid(ctx, sessionID, transaction.OrderID); err != nil {
			return nil, err
		}
	} else if err := srv.paymentRepo.UpdateStatus(ctx, sessionID, session.Status, session.PaymentStatus); err != nil {
		return nil, errors.Wrap(err, "failed to update payment transaction")
	}

	return &usecase.PaymentStatusOutput{
		Status:        session.Status,
		PaymentStatus: session.PaymentStatus,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
	}, nil
}

// HandleWebhook reconciles every checkout session event whose session is paid,
// covering both immediate and delayed payment methods.
// Unknown orders are acknowledged so the provider stops retrying.
func (srv *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.gateway.ParseWebhook(payload, signature)
	if err != nil {
		srv.log(ctx).Warn("Rejected payment webhook", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInvalidWebhook, err.Error())
	}

	session := event.Session
	if !service.IsCheckoutSessionEvent(event.Type) || session == nil ||
		session.PaymentStatus != service.CheckoutPaymentStatusPaid {
		srv.log(ctx).Debug("Ignoring payment webhook", slog.String("event_id", event.ID), slog.String("type", event.Type))

		return nil
	}

	orderID, err := uuid.Parse(session.Metadata["order_id"])
	if err != nil {
		srv.log(ctx).Warn("Payment webhook without a valid order id", slog.String("session_id", session.ID))

		return nil
	}

	if err := srv.markPaid(ctx, session.ID, orderID); err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			srv.log(ctx).Warn("Payment webhook for unknown order", slog.String("order_id", orderID.String()))

			return nil
		}

		return err
	}

	return nil
}

// markPaid completes the transaction and moves the order to paid exactly once.
// Only the call that performs the transition publishes order.paid.
func (srv *paymentService) markPaid(ctx context.Context, sessionID string, orderID uuid.UUID) error {
	var (
		transitioned bool
		order        *entity.Order
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.PaymentRepo().UpdateStatus(ctx, sessionID, entity.TransactionStatusComplete, string(entity.PaymentStatusPaid))
		if err != nil && !errors.Is(err, repository.ErrTransactionNotFound) {
			return errors.Wrap(err, "failed to complete payment transaction")
		}

		orderRepo := repoFactory.OrderRepo()
		transitioned, err = orderRepo.MarkPaid(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to mark order paid")
		}

		if transitioned {
			if order, err = orderRepo.FindByID(ctx, orderID); err != nil {
				return errors.Wrap(err, "failed to reload paid order")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if !transitioned {
		srv.log(ctx).Debug("Order already paid", slog.String("order_id", orderID.String()))

		return nil
	}

	srv.log(ctx).Info("Order paid", slog.String("order_id", orderID.String()), slog.String("session_id", sessionID))
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderPaid, order)

	return nil
}
