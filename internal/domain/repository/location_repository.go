package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// LocationRepository define o porto de persistência para locais físicos.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
}
