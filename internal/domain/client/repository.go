package client

import "context"

// Repository defines the interface for client data access
type Repository interface {
	List(ctx context.Context) ([]*Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, id int, fn func(*Client) error) (*Client, error)
	Delete(ctx context.Context, id int) error
}
