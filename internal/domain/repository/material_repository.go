package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// MaterialRepository define o porto de persistência para materiais.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	List(onlyActive bool, limit, offset int) ([]*entity.Material, error)
	// Deactivate faz a exclusão lógica (ativo = false); materiais nunca são removidos.
	Deactivate(id string) error
}
