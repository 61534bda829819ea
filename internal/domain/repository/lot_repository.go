package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// LotRepository define o porto de persistência para lotes.
// Lotes são imutáveis após a criação: não há Update nem Delete.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	ListByMaterial(materialID string) ([]*entity.Lot, error)
}
