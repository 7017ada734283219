package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/unclebandit/influencer-portal/internal/metrics"
	"github.com/unclebandit/influencer-portal/internal/model"
)

const (
	TopicScheduledPostCreated       = "scheduled_post.created"
	TopicScheduledPostStatusChanged = "scheduled_post.status_changed"
	TopicCampaignStatusChanged      = "campaign.status_changed"
	TopicWorkflowTaskStatusChanged  = "workflow_task.status_changed"
	TopicAIContentRequestCreated    = "ai_content_request.created"
)

// NewEvent wraps data in an Event with a fresh id.
func NewEvent(topic string, data any) (model.Event, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return model.Event{}, fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	return model.Event{
		ID:         uuid.NewString(),
		Topic:      topic,
		Payload:    body,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// Publisher turns domain objects into events and hands them to a Queue.
// Failures are logged and counted, never returned.
type Publisher struct {
	Queue   Queue
	Metrics *metrics.Registry
}

func NewPublisher(q Queue, m *metrics.Registry) *Publisher {
	return &Publisher{Queue: q, Metrics: m}
}

func (p *Publisher) Publish(topic string, data any) {
	event, err := NewEvent(topic, data)
	if err == nil {
		err = p.Queue.Publish(topic, event)
	}
	p.Metrics.ObserveEventPublished(topic, err)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
		return
	}
	log.Debug().Str("topic", topic).Str("event_id", event.ID).Msg("event published")
}
