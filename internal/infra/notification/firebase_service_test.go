package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"eats/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutFirebaseConfigLogsOnly(t *testing.T) {
	svc, err := New(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, ok := svc.(*logOnlyService)
	assert.True(t, ok)
}

func TestLogOnlyService_SendBatchNotification(t *testing.T) {
	svc := &logOnlyService{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	tooMany := make([]string, MaxBatchSize+1)
	_, _, _, err = svc.SendBatchNotification(context.Background(), tooMany, "t", "b", nil)
	assert.Error(t, err)
}
