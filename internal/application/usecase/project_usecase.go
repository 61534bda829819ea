package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para obras.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase constrói o caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func validProjectStatus(status string) bool {
	switch status {
	case entity.ProjectActive, entity.ProjectPaused,
		entity.ProjectDone, entity.ProjectCancelled:
		return true
	}
	return false
}

// Create cria uma obra nova, sempre no status ativa.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    entity.ProjectActive,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		StartedAt: in.StartedAt,
		DueAt:     in.DueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtém uma obra por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return toProjectResponse(project), nil
}

// Update atualiza uma obra.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Status != nil {
		if !validProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	if in.Address != nil {
		project.Address = *in.Address
	}
	if in.City != nil {
		project.City = *in.City
	}
	if in.State != nil {
		project.State = *in.State
	}
	if in.Zip != nil {
		project.Zip = *in.Zip
	}
	if in.StartedAt != nil {
		project.StartedAt = in.StartedAt
	}
	if in.DueAt != nil {
		project.DueAt = in.DueAt
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List lista obras; filtra por status quando informado.
func (uc *ProjectUseCase) List(status string, limit, offset int) (*dto.ProjectListResponse, error) {
	var (
		list []*entity.Project
		err  error
	)
	if status != "" {
		if !validProjectStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		list, err = uc.repo.ListByStatus(status, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Status:    p.Status,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		Zip:       p.Zip,
		StartedAt: p.StartedAt,
		DueAt:     p.DueAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
