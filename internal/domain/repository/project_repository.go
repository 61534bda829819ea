package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// ProjectRepository define o porto de persistência para obras.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	List(limit, offset int) ([]*entity.Project, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Project, error)
}
