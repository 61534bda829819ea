package repository

import (
	"time"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
)

// MovementRepository define o porto de persistência para o razão de movimentações.
// O razão é append-only: não expõe Update nem Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByMaterial(materialID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByLocation(locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
