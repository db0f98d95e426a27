package client

import "github.com/lumelec/backoffice/internal/types"

// Client is a customer company and its contact
type Client struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contactPerson"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

func (c *Client) GetID() int {
	return c.ID
}

// Copy returns a deep copy of the client
func (c *Client) Copy() *Client {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Phone = types.CopyString(c.Phone)
	cp.Address = types.CopyString(c.Address)
	return &cp
}
