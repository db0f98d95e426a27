package handler

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/pubsub"
	pubsubRouter "github.com/lumelec/backoffice/internal/pubsub/router"
	"github.com/lumelec/backoffice/internal/sentry"
	"github.com/lumelec/backoffice/internal/types"
)

// Handler consumes domain events and turns them into notifications
type Handler interface {
	RegisterHandler(router *pubsubRouter.Router)
}

type handler struct {
	pubSub       pubsub.PubSub
	config       *config.NotificationConfig
	settingsRepo settings.Repository
	notifier     Notifier
	logger       *logger.Logger
	sentry       *sentry.Service
}

func NewHandler(
	pubSub pubsub.PubSub,
	cfg *config.Configuration,
	settingsRepo settings.Repository,
	notifier Notifier,
	logger *logger.Logger,
	sentry *sentry.Service,
) Handler {
	return &handler{
		pubSub:       pubSub,
		config:       &cfg.Notification,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		logger:       logger,
		sentry:       sentry,
	}
}

func (h *handler) RegisterHandler(router *pubsubRouter.Router) {
	router.AddNoPublishHandler(
		"notification_handler",
		h.config.Topic,
		h.pubSub,
		h.processMessage,
	)
}

func (h *handler) processMessage(msg *message.Message) error {
	var event types.DomainEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.logger.Errorw("failed to unmarshal domain event",
			"error", err,
			"message_uuid", msg.UUID,
		)
		return nil
	}

	ctx := msg.Context()
	if event.RequestID != "" {
		ctx = types.SetRequestID(ctx, event.RequestID)
	}

	span, ctx := h.sentry.MonitorEventProcessing(ctx, event.EventName, event.Timestamp)
	if span != nil {
		defer span.Finish()
	}

	return h.handleEvent(ctx, &event)
}

func (h *handler) handleEvent(ctx context.Context, event *types.DomainEvent) error {
	s, err := h.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	if !s.NotifiesFor(event.Family()) {
		h.logger.Debugw("notification muted by settings",
			"event_id", event.ID,
			"event_name", event.EventName,
		)
		return nil
	}

	return h.notifier.Notify(ctx, NewNotification(event))
}
