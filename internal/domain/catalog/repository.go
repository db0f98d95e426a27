package catalog

import "context"

// Repository defines the interface for catalog service data access
type Repository interface {
	List(ctx context.Context) ([]*Service, error)
	Get(ctx context.Context, id int) (*Service, error)
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, id int, fn func(*Service) error) (*Service, error)
	Delete(ctx context.Context, id int) error
}
