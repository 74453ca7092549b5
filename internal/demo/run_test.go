package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_AllMessagesDelivered(t *testing.T) {
	cfg := Config{
		Capacity:  8,
		Producers: 3,
		Consumers: 2,
		Messages:  300,
		LogLevel:  "info",
	}

	summary, err := Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, cfg.Messages, summary.Sent)
	require.Equal(t, cfg.Messages, summary.Received)
}

func TestRun_SingleProducerSingleConsumer(t *testing.T) {
	cfg := Config{
		Capacity:  1,
		Producers: 1,
		Consumers: 1,
		Messages:  50,
		LogLevel:  "info",
	}

	summary, err := Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 50, summary.Received)
}
