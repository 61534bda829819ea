package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// SupplierRepository define o porto de persistência para fornecedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListActive() ([]*entity.Supplier, error)
	Deactivate(id string) error
}
