package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBench_AggregatesAcrossIterations(t *testing.T) {
	cfg := Config{
		Capacity:  8,
		Producers: 2,
		Consumers: 2,
		Messages:  100,
		LogLevel:  "info",
	}

	result, err := Bench(context.Background(), cfg, 3, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 3, result.Iterations)
	require.Equal(t, 300, result.Messages)
	require.Greater(t, result.MessagesPerSec, 0.0)
}

func TestBench_RejectsZeroIterations(t *testing.T) {
	cfg := DefaultConfig()
	_, err := Bench(context.Background(), cfg, 0, zap.NewNop())
	require.Error(t, err)
}
