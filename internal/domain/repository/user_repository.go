package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// UserRepository define o porto de persistência para usuários/perfis.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
