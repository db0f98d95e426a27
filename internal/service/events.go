package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lumelec/backoffice/internal/types"
)

// publishEvent announces a completed mutation. Failures are logged and
// never reach the caller: the mutation already happened.
func (p ServiceParams) publishEvent(ctx context.Context, eventName string, entityID int, payload any) {
	if p.EventPublisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.Logger.Errorw("failed to marshal event payload", "event_name", eventName, "error", err)
		return
	}

	event := &types.DomainEvent{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		EventName: eventName,
		EntityID:  entityID,
		RequestID: types.GetRequestID(ctx),
		Timestamp: time.Now().UTC(),
		Payload:   data,
	}

	if err := p.EventPublisher.Publish(ctx, event); err != nil {
		p.Logger.Errorw("failed to publish event",
			"event_id", event.ID,
			"event_name", eventName,
			"entity_id", entityID,
			"error", err,
		)
	}
}
