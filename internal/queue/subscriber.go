package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unclebandit/influencer-portal/internal/metrics"
	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

// EventLogHandler persists every event it receives into the event log.
func EventLogHandler(repo repository.EventRepositoryInterface, m *metrics.Registry) func(payload any) error {
	return func(payload any) error {
		event, ok := payload.(model.Event)
		if !ok {
			log.Warn().Type("payload", payload).Msg("invalid payload type, expected model.Event")
			return nil // no retry
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		inserted, err := repo.Record(ctx, event)
		m.ObserveEventRecorded(event.Topic, err)
		if err != nil {
			return fmt.Errorf("record event %s: %w", event.ID, err)
		}
		if !inserted {
			log.Debug().Str("event_id", event.ID).Msg("event already recorded")
			return nil
		}
		log.Info().Str("event_id", event.ID).Str("topic", event.Topic).Msg("event recorded")
		return nil
	}
}

// StartEventLogSubscriber wires EventLogHandler to every topic of q.
func StartEventLogSubscriber(q Queue, repo repository.EventRepositoryInterface, m *metrics.Registry) error {
	if err := q.Subscribe(AllTopics, EventLogHandler(repo, m)); err != nil {
		return fmt.Errorf("subscribe event log: %w", err)
	}
	return nil
}
