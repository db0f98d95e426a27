package dto

import (
	"github.com/lumelec/backoffice/internal/domain/project"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/lumelec/backoffice/internal/validator"
)

type CreateProjectRequest struct {
	Name      string `json:"name" validate:"required"`
	Client    string `json:"client" validate:"required"`
	Status    string `json:"status" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateProjectRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateProjectRequest) ToProject() *project.Project {
	return &project.Project{
		Name:      r.Name,
		Client:    r.Client,
		Status:    r.Status,
		StartDate: r.StartDate,
		EndDate:   types.NullableString(r.EndDate),
	}
}

// UpdateProjectRequest carries only the fields to change. endDate may be
// cleared with null or "".
type UpdateProjectRequest struct {
	Name      types.Optional[string] `json:"name"`
	Client    types.Optional[string] `json:"client"`
	Status    types.Optional[string] `json:"status"`
	StartDate types.Optional[string] `json:"startDate"`
	EndDate   types.Optional[string] `json:"endDate"`
}

func (r *UpdateProjectRequest) Validate() error {
	errs := fieldErrors{}
	notNull(errs, "name", r.Name)
	notNull(errs, "client", r.Client)
	notNull(errs, "status", r.Status)
	notNull(errs, "startDate", r.StartDate)
	matches(errs, "startDate", r.StartDate, "datetime="+dateLayout, "must be a date formatted as "+dateLayout)
	matches(errs, "endDate", r.EndDate, "omitempty,datetime="+dateLayout, "must be a date formatted as "+dateLayout)
	return errs.err()
}

// Apply merges the request into p
func (r *UpdateProjectRequest) Apply(p *project.Project) {
	types.Apply(&p.Name, r.Name)
	types.Apply(&p.Client, r.Client)
	types.Apply(&p.Status, r.Status)
	types.Apply(&p.StartDate, r.StartDate)
	types.ApplyNullableString(&p.EndDate, r.EndDate)
}

type ProjectResponse struct {
	*project.Project
}
