package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/types"
)

// Notification is what the back-office owner is told about a change
type Notification struct {
	ID        string    `json:"id"`
	EventName string    `json:"event_name"`
	EntityID  int       `json:"entity_id,omitempty"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier delivers notifications
type Notifier interface {
	Notify(ctx context.Context, n *Notification) error
}

var familyLabels = map[string]string{
	types.EventFamilyProject:  "Project",
	types.EventFamilyClient:   "Client",
	types.EventFamilyService:  "Service",
	types.EventFamilyInvoice:  "Invoice",
	types.EventFamilySettings: "Settings",
}

// NewNotification builds the notification for a domain event
func NewNotification(event *types.DomainEvent) *Notification {
	label, ok := familyLabels[event.Family()]
	if !ok {
		label = event.Family()
	}

	subject := fmt.Sprintf("%s %s", label, actionOf(event.EventName))
	if event.EntityID != 0 {
		subject = fmt.Sprintf("%s #%d %s", label, event.EntityID, actionOf(event.EventName))
	}

	return &Notification{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
		EventName: event.EventName,
		EntityID:  event.EntityID,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	}
}

func actionOf(eventName string) string {
	if _, action, ok := strings.Cut(eventName, "."); ok {
		return action
	}
	return eventName
}

// logNotifier writes notifications to the log, the only delivery channel
type logNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, notification *Notification) error {
	n.logger.Infow("notification",
		"notification_id", notification.ID,
		"event_name", notification.EventName,
		"entity_id", notification.EntityID,
		"subject", notification.Subject,
		"request_id", types.GetRequestID(ctx),
	)
	return nil
}
