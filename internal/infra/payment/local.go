package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"maps"
	"strings"
	"sync"

	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/google/uuid"
)

const localSessionPrefix = "cs_local_"

// ErrLocalSessionNotFound is returned for ids the local gateway never issued.
var ErrLocalSessionNotFound = errors.New("local checkout session not found")

// localGateway is an in-process checkout provider for development.
// Sessions complete and are paid as soon as they are created.
type localGateway struct {
	checkoutURL   string
	webhookSecret string

	mu       sync.RWMutex
	sessions map[string]*service.CheckoutSession
}

// LocalWebhookPayload is the body the local provider signs and delivers.
type LocalWebhookPayload struct {
	ID      string                   `json:"id"`
	Type    string                   `json:"type"`
	Session *service.CheckoutSession `json:"session,omitempty"`
}

// NewLocalGateway creates a development gateway.
func NewLocalGateway(checkoutURL, webhookSecret string) service.PaymentGateway {
	return &localGateway{
		checkoutURL:   strings.TrimRight(checkoutURL, "/"),
		webhookSecret: webhookSecret,
		sessions:      make(map[string]*service.CheckoutSession),
	}
}

func (g *localGateway) CreateCheckoutSession(_ context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	id := localSessionPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")

	sess := &service.CheckoutSession{
		ID:            id,
		URL:           strings.ReplaceAll(req.SuccessURL, "{CHECKOUT_SESSION_ID}", id),
		Status:        "complete",
		PaymentStatus: service.CheckoutPaymentStatusPaid,
		AmountTotal:   req.Amount,
		Currency:      req.Currency,
		Metadata:      maps.Clone(req.Metadata),
	}
	if g.checkoutURL != "" {
		sess.URL = g.checkoutURL + "/" + id
	}

	g.mu.Lock()
	g.sessions[id] = sess
	g.mu.Unlock()

	return cloneSession(sess), nil
}

func (g *localGateway) GetCheckoutSession(_ context.Context, sessionID string) (*service.CheckoutSession, error) {
	g.mu.RLock()
	sess, ok := g.sessions[sessionID]
	g.mu.RUnlock()

	if !ok {
		return nil, ErrLocalSessionNotFound
	}

	return cloneSession(sess), nil
}

func (g *localGateway) ParseWebhook(payload []byte, signature string) (*service.WebhookEvent, error) {
	if !hmac.Equal([]byte(SignLocalPayload(g.webhookSecret, payload)), []byte(strings.TrimSpace(signature))) {
		return nil, service.ErrWebhookSignature
	}

	var body LocalWebhookPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, errors.Wrap(err, "decode local webhook")
	}

	return &service.WebhookEvent{ID: body.ID, Type: body.Type, Session: body.Session}, nil
}

// SignLocalPayload returns the hex HMAC-SHA256 signature the local provider expects.
func SignLocalPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func cloneSession(sess *service.CheckoutSession) *service.CheckoutSession {
	out := *sess
	out.Metadata = maps.Clone(sess.Metadata)

	return &out
}
