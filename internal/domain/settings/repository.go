package settings

import "context"

// Repository gives access to the settings singleton
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, fn func(*Settings) error) (*Settings, error)
}
