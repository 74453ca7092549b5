package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	mpmc "github.com/DexterHaxxor/atomic-mpmc"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// message is the payload this demo pushes through the queue: enough
// to show per-producer attribution in the final summary without
// making the demo about the payload type.
type message struct {
	producerID uuid.UUID
	seq        int
}

// Summary reports what happened during one Run.
type Summary struct {
	Sent           int
	Received       int
	ProducerHangUp bool
	ConsumerHangUp bool
	Elapsed        time.Duration
}

// Run builds a queue per cfg, fans out cfg.Producers producer
// goroutines and cfg.Consumers consumer goroutines with errgroup, and
// blocks until every producer has finished sending and every consumer
// has observed hang-up (the queue has drained and every producer
// handle is closed).
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (Summary, error) {
	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))
	start := time.Now()

	producer, consumer := mpmc.New[message](cfg.Capacity)

	perProducer := cfg.Messages / cfg.Producers
	remainder := cfg.Messages % cfg.Producers

	eg, egCtx := errgroup.WithContext(ctx)

	for i := 0; i < cfg.Producers; i++ {
		count := perProducer
		if i < remainder {
			count++
		}
		own := producer.Clone()
		id := uuid.New()
		eg.Go(func() error {
			defer own.Close()
			log := logger.With(zap.String("producer_id", id.String()))
			log.Debug("producer starting", zap.Int("messages", count))
			for seq := 0; seq < count; seq++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				err := own.Send(message{producerID: id, seq: seq})
				if err != nil {
					if errors.Is(err, mpmc.ErrHungUp) {
						log.Warn("producer hung up: no consumers left")
						return nil
					}
					return fmt.Errorf("producer %s: %w", id, err)
				}
			}
			log.Debug("producer finished")
			return nil
		})
	}
	// The original handle returned by New is just one more producer
	// reference; release it now that every worker holds its own clone.
	_ = producer.Close()

	received := make(chan int, cfg.Consumers)
	for i := 0; i < cfg.Consumers; i++ {
		own := consumer.Clone()
		id := uuid.New()
		eg.Go(func() error {
			defer own.Close()
			log := logger.With(zap.String("consumer_id", id.String()))
			count := 0
			for v := range own.Iter().All() {
				_ = v
				count++
			}
			log.Debug("consumer finished", zap.Int("received", count))
			received <- count
			return nil
		})
	}
	_ = consumer.Close()

	err := eg.Wait()
	close(received)

	total := 0
	for n := range received {
		total += n
	}

	summary := Summary{
		Sent:     cfg.Messages,
		Received: total,
		Elapsed:  time.Since(start),
	}

	logger.Info("run complete",
		zap.Int("sent", summary.Sent),
		zap.Int("received", summary.Received),
		zap.Duration("elapsed", summary.Elapsed),
	)

	return summary, err
}
