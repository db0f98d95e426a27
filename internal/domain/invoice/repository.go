package invoice

import "context"

// Repository defines the interface for invoice data access. It stores
// invoices as they are; joining the client name is the service's job.
type Repository interface {
	List(ctx context.Context) ([]*Invoice, error)
	Get(ctx context.Context, id int) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, id int, fn func(*Invoice) error) (*Invoice, error)
	Delete(ctx context.Context, id int) error
}
