package project

import "github.com/lumelec/backoffice/internal/types"

// Project is a job carried out for a customer. Client is free text and
// is not linked to the client records.
type Project struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Client    string  `json:"client"`
	Status    string  `json:"status"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func (p *Project) GetID() int {
	return p.ID
}

// Copy returns a deep copy of the project
func (p *Project) Copy() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.EndDate = types.CopyString(p.EndDate)
	return &c
}
