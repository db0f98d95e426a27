package handler

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/logger"
	pubsubMemory "github.com/lumelec/backoffice/internal/pubsub/memory"
	"github.com/lumelec/backoffice/internal/repository/memory"
	"github.com/lumelec/backoffice/internal/sentry"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		names = append(names, n.EventName)
	}
	return names
}

type HandlerSuite struct {
	suite.Suite
	settingsRepo *memory.SettingsStore
	notifier     *recordingNotifier
	handler      *handler
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()

	s.settingsRepo = memory.NewSettingsStore(memory.SeedSettings())
	s.notifier = &recordingNotifier{}
	s.handler = NewHandler(
		pubsubMemory.NewPubSub(log),
		cfg,
		s.settingsRepo,
		s.notifier,
		log,
		sentry.NewSentryService(cfg, log),
	).(*handler)
}

func (s *HandlerSuite) process(name string, entityID int) {
	event := &types.DomainEvent{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		EventName: name,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	s.Require().NoError(err)
	s.Require().NoError(s.handler.processMessage(message.NewMessage(event.ID, payload)))
}

func (s *HandlerSuite) setToggles(email, project, invoice bool) {
	_, err := s.settingsRepo.Update(context.Background(), func(st *settings.Settings) error {
		st.EmailNotificationsEnabled = email
		st.ProjectNotificationsEnabled = project
		st.InvoiceNotificationsEnabled = invoice
		return nil
	})
	s.Require().NoError(err)
}

func (s *HandlerSuite) TestSeedTogglesMuteInvoices() {
	s.process(types.EventProjectCreated, 4)
	s.process(types.EventInvoiceCreated, 3)
	s.process(types.EventClientDeleted, 2)

	s.Equal([]string{types.EventProjectCreated, types.EventClientDeleted}, s.notifier.names())
}

func (s *HandlerSuite) TestEmailOffMutesEverything() {
	s.setToggles(false, true, true)

	s.process(types.EventProjectUpdated, 1)
	s.process(types.EventInvoiceUpdated, 1)
	s.process(types.EventSettingsUpdated, 0)

	s.Empty(s.notifier.names())
}

func (s *HandlerSuite) TestInvoiceToggleOn() {
	s.setToggles(true, false, true)

	s.process(types.EventProjectDeleted, 1)
	s.process(types.EventInvoiceDeleted, 1)

	s.Equal([]string{types.EventInvoiceDeleted}, s.notifier.names())
}

func (s *HandlerSuite) TestMalformedPayloadIsDropped() {
	err := s.handler.processMessage(message.NewMessage("bad", []byte("{")))
	s.NoError(err)
	s.Empty(s.notifier.names())
}

func TestNewNotification(t *testing.T) {
	n := NewNotification(&types.DomainEvent{EventName: types.EventInvoiceCreated, EntityID: 3})
	assert.Equal(t, "Invoice #3 created", n.Subject)
	require.NotEmpty(t, n.ID)
	assert.Contains(t, n.ID, types.UUID_PREFIX_NOTIFICATION)

	n = NewNotification(&types.DomainEvent{EventName: types.EventSettingsUpdated})
	assert.Equal(t, "Settings updated", n.Subject)
}
