package service

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/domain/project"
	"github.com/lumelec/backoffice/internal/interfaces"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
)

type ProjectService = interfaces.ProjectService

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{
		ServiceParams: params,
	}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProject()
	if err := s.ProjectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("project created", "project_id", p.ID, "name", p.Name)
	s.publishEvent(ctx, types.EventProjectCreated, p.ID, p)
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) GetProject(ctx context.Context, id int) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	projects, err := s.ProjectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(projects, func(p *project.Project, _ int) *dto.ProjectResponse {
		return &dto.ProjectResponse{Project: p}
	}), nil
}

func (s *projectService) UpdateProject(ctx context.Context, id int, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Update(ctx, id, func(current *project.Project) error {
		req.Apply(current)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventProjectUpdated, p.ID, p)
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int) error {
	if err := s.ProjectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("project deleted", "project_id", id)
	s.publishEvent(ctx, types.EventProjectDeleted, id, map[string]int{"id": id})
	return nil
}
