package testutil

import (
	"context"
	"sync"

	"github.com/lumelec/backoffice/internal/notification/publisher"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
)

// InMemoryEventPublisher records published events for assertions
type InMemoryEventPublisher struct {
	mu     sync.RWMutex
	events []*types.DomainEvent
}

var _ publisher.EventPublisher = (*InMemoryEventPublisher)(nil)

func NewInMemoryEventPublisher() *InMemoryEventPublisher {
	return &InMemoryEventPublisher{}
}

func (p *InMemoryEventPublisher) Publish(_ context.Context, event *types.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return nil
}

// Events returns everything published so far
func (p *InMemoryEventPublisher) Events() []*types.DomainEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]*types.DomainEvent(nil), p.events...)
}

// EventNames returns the names of published events in order
func (p *InMemoryEventPublisher) EventNames() []string {
	return lo.Map(p.Events(), func(e *types.DomainEvent, _ int) string { return e.EventName })
}

func (p *InMemoryEventPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = nil
}

func (p *InMemoryEventPublisher) Close() error {
	return nil
}
