package config

import "github.com/lumelec/backoffice/internal/types"

// NotificationConfig controls publication of domain events and the
// notification handler that consumes them
type NotificationConfig struct {
	Enabled bool             `mapstructure:"enabled"`
	Topic   string           `mapstructure:"topic" validate:"required_if=Enabled true"`
	PubSub  types.PubSubType `mapstructure:"pubsub" validate:"omitempty,oneof=memory"`
}
