package publisher

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/pubsub"
	"github.com/lumelec/backoffice/internal/types"
)

// EventPublisher publishes domain events for the notification handler
type EventPublisher interface {
	Publish(ctx context.Context, event *types.DomainEvent) error
	Close() error
}

type eventPublisher struct {
	pubSub pubsub.PubSub
	config *config.NotificationConfig
	logger *logger.Logger
}

// NewPublisher returns a no-op publisher when notifications are disabled
func NewPublisher(
	pubSub pubsub.PubSub,
	cfg *config.Configuration,
	logger *logger.Logger,
) EventPublisher {
	if !cfg.Notification.Enabled {
		return NewNoopPublisher()
	}
	return &eventPublisher{
		pubSub: pubSub,
		config: &cfg.Notification,
		logger: logger,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, event *types.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_name", event.EventName)
	if event.RequestID != "" {
		msg.Metadata.Set("request_id", event.RequestID)
	}

	p.logger.Debugw("publishing domain event",
		"event_id", event.ID,
		"event_name", event.EventName,
		"entity_id", event.EntityID,
		"topic", p.config.Topic,
	)

	if err := p.pubSub.Publish(ctx, p.config.Topic, msg); err != nil {
		p.logger.Errorw("failed to publish domain event",
			"error", err,
			"event_id", event.ID,
			"event_name", event.EventName,
		)
		return err
	}
	return nil
}

func (p *eventPublisher) Close() error {
	return p.pubSub.Close()
}

type noopPublisher struct{}

// NewNoopPublisher drops every event
func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *types.DomainEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
