package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// UnitRepository define o porto de leitura das unidades de medida.
type UnitRepository interface {
	GetByID(id string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
}
