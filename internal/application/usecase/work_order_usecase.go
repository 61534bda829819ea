package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

// WorkOrderUseCase casos de uso CRUD para ordens de serviço.
type WorkOrderUseCase struct {
	repo repository.WorkOrderRepository
}

// NewWorkOrderUseCase constrói o caso de uso.
func NewWorkOrderUseCase(repo repository.WorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func validWorkOrderStatus(status string) bool {
	switch status {
	case entity.WorkOrderActive, entity.WorkOrderPaused,
		entity.WorkOrderDone, entity.WorkOrderCancelled:
		return true
	}
	return false
}

// Create cria uma ordem de serviço nova, sempre no status ativa.
func (uc *WorkOrderUseCase) Create(in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.Code == "" || in.Description == "" || in.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.WorkOrder{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Description: in.Description,
		Team:        in.Team,
		Status:      entity.WorkOrderActive,
		ProjectID:   in.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(order), nil
}

// GetByID obtém uma ordem de serviço por ID.
func (uc *WorkOrderUseCase) GetByID(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toWorkOrderResponse(order), nil
}

// Update atualiza descrição, equipe e status de uma OS.
func (uc *WorkOrderUseCase) Update(id string, in dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.Description != nil {
		order.Description = *in.Description
	}
	if in.Team != nil {
		order.Team = *in.Team
	}
	if in.Status != nil {
		if !validWorkOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(order), nil
}

// ListByStatus lista ordens de serviço num status, com paginação.
func (uc *WorkOrderUseCase) ListByStatus(status string, limit, offset int) (*dto.WorkOrderListResponse, error) {
	if !validWorkOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkOrderResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkOrderResponse(w))
	}
	return &dto.WorkOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWorkOrderResponse(w *entity.WorkOrder) *dto.WorkOrderResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkOrderResponse{
		ID:          w.ID,
		Code:        w.Code,
		Description: w.Description,
		Team:        w.Team,
		Status:      w.Status,
		ProjectID:   w.ProjectID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
