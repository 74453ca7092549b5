package demo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// BenchResult reports throughput for one Bench run.
type BenchResult struct {
	Iterations     int
	Messages       int
	Elapsed        time.Duration
	MessagesPerSec float64
}

// Bench runs cfg through Run `iterations` times back to back and
// reports aggregate throughput, the CLI counterpart of the teacher's
// own b.N-driven BenchmarkRingBuffer_Write/BenchmarkRingBuffer_Read
// (ringbuffer_test.go), adapted here to a standalone command instead
// of `go test -bench`.
func Bench(ctx context.Context, cfg Config, iterations int, logger *zap.Logger) (BenchResult, error) {
	if iterations < 1 {
		return BenchResult{}, fmt.Errorf("demo: iterations must be at least 1, got %d", iterations)
	}

	var total int
	start := time.Now()
	for i := 0; i < iterations; i++ {
		summary, err := Run(ctx, cfg, logger)
		if err != nil {
			return BenchResult{}, fmt.Errorf("bench iteration %d: %w", i, err)
		}
		total += summary.Received
	}
	elapsed := time.Since(start)

	result := BenchResult{
		Iterations: iterations,
		Messages:   total,
		Elapsed:    elapsed,
	}
	if elapsed > 0 {
		result.MessagesPerSec = float64(total) / elapsed.Seconds()
	}

	logger.Info("bench complete",
		zap.Int("iterations", result.Iterations),
		zap.Int("messages", result.Messages),
		zap.Duration("elapsed", result.Elapsed),
		zap.Float64("messages_per_sec", result.MessagesPerSec),
	)

	return result, nil
}
