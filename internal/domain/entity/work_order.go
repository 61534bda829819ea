package entity

import "time"

// Status de uma ordem de serviço.
const (
	WorkOrderActive    = "ativa"
	WorkOrderPaused    = "pausada"
	WorkOrderDone      = "concluida"
	WorkOrderCancelled = "cancelada"
)

// WorkOrder representa uma ordem de serviço que consome materiais do estoque.
type WorkOrder struct {
	ID          string
	Code        string
	Description string
	Team        string // equipe responsável
	Status      string
	ProjectID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
