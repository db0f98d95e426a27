package types

import (
	"encoding/json"
	"strings"
	"time"
)

// DomainEvent is published after every successful mutation
type DomainEvent struct {
	ID        string          `json:"id"`
	EventName string          `json:"event_name"`
	EntityID  int             `json:"entity_id,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Family returns the entity part of the event name, "invoice" for "invoice.created"
func (e *DomainEvent) Family() string {
	family, _, _ := strings.Cut(e.EventName, ".")
	return family
}

const (
	EventFamilyProject  = "project"
	EventFamilyClient   = "client"
	EventFamilyService  = "service"
	EventFamilyInvoice  = "invoice"
	EventFamilySettings = "settings"
)

const (
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"

	EventClientCreated = "client.created"
	EventClientUpdated = "client.updated"
	EventClientDeleted = "client.deleted"

	EventServiceCreated = "service.created"
	EventServiceUpdated = "service.updated"
	EventServiceDeleted = "service.deleted"

	EventInvoiceCreated = "invoice.created"
	EventInvoiceUpdated = "invoice.updated"
	EventInvoiceDeleted = "invoice.deleted"

	EventSettingsUpdated = "settings.updated"
)
