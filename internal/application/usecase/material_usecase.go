package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para o catálogo de materiais.
// Saldo e custo médio são mantidos pelo motor de movimentação, nunca por aqui.
type MaterialUseCase struct {
	repo     repository.MaterialRepository
	unitRepo repository.UnitRepository
}

// NewMaterialUseCase constrói o caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, unitRepo repository.UnitRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, unitRepo: unitRepo}
}

// Create cria um material novo. A unidade padrão precisa existir.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.Material{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		UnitID:      in.UnitID,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtém um material por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// Update atualiza um material. Código não muda depois de criado.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Description != nil {
		material.Description = *in.Description
	}
	if in.Category != nil {
		material.Category = *in.Category
	}
	if in.Subcategory != nil {
		material.Subcategory = *in.Subcategory
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrInvalidInput
		}
		material.UnitID = *in.UnitID
	}
	if in.MinStock != nil {
		material.MinStock = in.MinStock
	}
	if in.MaxStock != nil {
		material.MaxStock = in.MaxStock
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List lista materiais com paginação.
func (uc *MaterialUseCase) List(onlyActive bool, limit, offset int) (*dto.MaterialListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate desativa um material (exclusão lógica).
func (uc *MaterialUseCase) Deactivate(id string) error {
	return uc.repo.Deactivate(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Subcategory: m.Subcategory,
		UnitID:      m.UnitID,
		MinStock:    m.MinStock,
		MaxStock:    m.MaxStock,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
