package project

import "context"

// Repository defines the interface for project data access
type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	Get(ctx context.Context, id int) (*Project, error)
	// Create assigns the next id to p and stores it
	Create(ctx context.Context, p *Project) error
	// Update applies fn to the stored project atomically; nothing is
	// written when fn returns an error
	Update(ctx context.Context, id int, fn func(*Project) error) (*Project, error)
	Delete(ctx context.Context, id int) error
}
