// cmd/server/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/unclebandit/influencer-portal/internal/config"
	"github.com/unclebandit/influencer-portal/internal/controller"
	"github.com/unclebandit/influencer-portal/internal/db"
	"github.com/unclebandit/influencer-portal/internal/metrics"
	"github.com/unclebandit/influencer-portal/internal/queue"
	"github.com/unclebandit/influencer-portal/internal/repository"
	"github.com/unclebandit/influencer-portal/internal/router"
	"github.com/unclebandit/influencer-portal/internal/service"
)

func runMigrations(ctx context.Context, cfg config.Config) error {
	conn, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	applied, err := db.Migrate(ctx, conn)
	if err != nil {
		return err
	}
	log.Info().Int("applied", len(applied)).Msg("migrations complete")
	return nil
}

func serve(parent context.Context, cfg config.Config, migrate bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	if migrate {
		if _, err := db.Migrate(ctx, conn); err != nil {
			return err
		}
	}

	m := metrics.New()
	q, closeQueue, err := openQueue(cfg, conn, m)
	if err != nil {
		return err
	}
	defer closeQueue()

	handler := router.New(buildRouterOptions(cfg, conn, queue.NewPublisher(q, m), m))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openQueue returns the AMQP queue when a broker is configured. Otherwise
// events stay in process and are written to the event log directly.
func openQueue(cfg config.Config, conn *sqlx.DB, m *metrics.Registry) (queue.Queue, func(), error) {
	if cfg.AMQP.Enabled() {
		q, err := queue.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("publishing events to AMQP")
		return q, func() {
			if err := q.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close AMQP queue")
			}
		}, nil
	}

	q := queue.NewInMemoryQueue()
	events := repository.NewEventRepository(conn, cfg.DB.QueryTimeout)
	if err := queue.StartEventLogSubscriber(q, events, m); err != nil {
		return nil, nil, err
	}
	log.Info().Msg("AMQP_URL not set, using in-memory event queue")
	return q, q.Wait, nil
}

func buildRouterOptions(cfg config.Config, conn *sqlx.DB, events service.EventPublisher, m *metrics.Registry) router.Options {
	timeout := cfg.DB.QueryTimeout

	users := repository.NewUserRepository(conn, timeout)
	accounts := repository.NewPlatformAccountRepository(conn, timeout)
	content := repository.NewContentRepository(conn, timeout)
	posts := repository.NewScheduledPostRepository(conn, timeout)
	campaigns := repository.NewCampaignRepository(conn, timeout)
	campaignMetrics := repository.NewCampaignMetricsRepository(conn, timeout)
	tasks := repository.NewWorkflowTaskRepository(conn, timeout)
	trends := repository.NewTrendRepository(conn, timeout)
	aiRequests := repository.NewAIContentRequestRepository(conn, timeout)

	return router.Options{
		Users: &controller.UserController{
			UserService:    &service.UserService{UserRepo: users},
			AccountService: &service.PlatformAccountService{UserRepo: users, AccountRepo: accounts},
		},
		Content: &controller.ContentController{
			ContentService: &service.ContentService{UserRepo: users, ContentRepo: content},
			PostService: &service.ScheduledPostService{
				UserRepo:    users,
				ContentRepo: content,
				AccountRepo: accounts,
				PostRepo:    posts,
				Events:      events,
			},
			AIContentService: &service.AIContentService{UserRepo: users, RequestRepo: aiRequests, Events: events},
		},
		Campaigns: &controller.CampaignController{
			CampaignService: &service.CampaignService{
				UserRepo:     users,
				CampaignRepo: campaigns,
				MetricsRepo:  campaignMetrics,
				Events:       events,
			},
		},
		Tasks: &controller.WorkflowTaskController{
			TaskService: &service.WorkflowTaskService{
				UserRepo:     users,
				CampaignRepo: campaigns,
				ContentRepo:  content,
				TaskRepo:     tasks,
				Events:       events,
			},
		},
		Trends: &controller.TrendController{
			TrendService: &service.TrendService{TrendRepo: trends},
		},
		DB:        conn,
		Metrics:   m,
		RateRPS:   cfg.RateLimit.RPS,
		RateBurst: cfg.RateLimit.Burst,
	}
}
