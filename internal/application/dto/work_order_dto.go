package dto

import "time"

// CreateWorkOrderRequest payload de criação de ordem de serviço.
type CreateWorkOrderRequest struct {
	Code        string `json:"codigo" validate:"required"`
	Description string `json:"descricao" validate:"required"`
	Team        string `json:"equipe_responsavel"`
	ProjectID   string `json:"id_obra" validate:"required"`
}

// UpdateWorkOrderRequest payload de atualização parcial de OS.
type UpdateWorkOrderRequest struct {
	Description *string `json:"descricao"`
	Team        *string `json:"equipe_responsavel"`
	Status      *string `json:"status"`
}

// WorkOrderResponse representação de ordem de serviço nas respostas.
type WorkOrderResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"codigo"`
	Description string    `json:"descricao"`
	Team        string    `json:"equipe_responsavel,omitempty"`
	Status      string    `json:"status"`
	ProjectID   string    `json:"id_obra"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkOrderListResponse listagem paginada de ordens de serviço.
type WorkOrderListResponse struct {
	Items []WorkOrderResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
