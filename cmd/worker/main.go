// cmd/worker/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/unclebandit/influencer-portal/internal/config"
	"github.com/unclebandit/influencer-portal/internal/db"
	"github.com/unclebandit/influencer-portal/internal/logger"
	"github.com/unclebandit/influencer-portal/internal/metrics"
	"github.com/unclebandit/influencer-portal/internal/queue"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if !cfg.AMQP.Enabled() {
		log.Error().Msg("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	q, err := queue.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer q.Close()

	events := repository.NewEventRepository(conn, cfg.DB.QueryTimeout)
	if err := run(ctx, q, events, metrics.New()); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("worker stopped")
	}
}

// run subscribes the event log handler and blocks until ctx is done.
func run(ctx context.Context, q queue.Queue, events repository.EventRepositoryInterface, m *metrics.Registry) error {
	if err := queue.StartEventLogSubscriber(q, events, m); err != nil {
		return err
	}
	log.Info().Msg("worker running, waiting for events...")
	<-ctx.Done()
	return ctx.Err()
}
