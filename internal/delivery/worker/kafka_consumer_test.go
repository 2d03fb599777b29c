package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"eats/internal/delivery/worker/handler"
	"eats/internal/domain/service"
	"eats/internal/errors"
	mockUC "eats/internal/mocks/usecase"
	"eats/internal/usecase"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader replays messages and then reports io.EOF like a closed reader.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true

	return nil
}

func eventMessage(t *testing.T, offset int64, eventID string) kafka.Message {
	t.Helper()

	raw, err := json.Marshal(service.OrderEvent{EventID: eventID, Type: service.EventOrderCreated})
	require.NoError(t, err)

	return kafka.Message{
		Offset:  offset,
		Value:   raw,
		Headers: []kafka.Header{{Key: "request_id", Value: []byte("req-" + eventID)}},
	}
}

func newTestConsumer(t *testing.T, reader *fakeReader) (*kafkaConsumer, *mockUC.MockOrderNotificationUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifyUC := mockUC.NewMockOrderNotificationUsecase(t)
	events := handler.NewOrderEventHandler(handler.OrderEventHandlerParams{NotifyUC: notifyUC, Logger: logger})

	return newKafkaConsumer(reader, events, logger), notifyUC
}

func TestKafkaConsumer_CommitsHandledAndMalformed(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		eventMessage(t, 1, "a"),
		{Offset: 2, Value: []byte("garbage")},
		eventMessage(t, 3, "c"),
	}}
	consumer, notifyUC := newTestConsumer(t, reader)

	notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.EventID == "a" })).
		Return(&usecase.NotificationResult{Sent: 1}, nil).Once()
	notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.EventID == "c" })).
		Return(nil, errors.Wrap(usecase.ErrMalformedEvent, "unknown type")).Once()

	require.NoError(t, consumer.Serve(context.Background()))

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestKafkaConsumer_RetriesBeforeCommit(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 7, "r")}}
	consumer, notifyUC := newTestConsumer(t, reader)

	notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
		Return(nil, usecase.NewRetryableError(errors.New("db down"))).Once()
	notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
		Return(&usecase.NotificationResult{}, nil).Once()

	require.NoError(t, consumer.Serve(context.Background()))

	assert.Equal(t, []int64{7}, reader.committed)
}

func TestKafkaConsumer_StopDuringRetryLeavesOffset(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 9, "s")}}
	consumer, notifyUC := newTestConsumer(t, reader)

	notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.OrderEvent) (*usecase.NotificationResult, error) {
			require.NoError(t, consumer.close(context.Background()))

			return nil, usecase.NewRetryableError(errors.New("db down"))
		}).Once()

	require.NoError(t, consumer.Serve(context.Background()))

	assert.Empty(t, reader.committed)
	assert.True(t, reader.closed)
}
