package repository

import (
	"encoding/json"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
)

// SettingRepository define o porto de persistência das configurações globais.
type SettingRepository interface {
	List() ([]*entity.Setting, error)
	GetByKey(key string) (*entity.Setting, error)
	UpdateValue(key string, value json.RawMessage) error
}
