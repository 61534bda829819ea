package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// WorkOrderRepository define o porto de persistência para ordens de serviço.
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
	ListByStatus(status string, limit, offset int) ([]*entity.WorkOrder, error)
}
