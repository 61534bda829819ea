package usecase

import (
	"encoding/json"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

// SettingUseCase casos de uso das configurações globais da aplicação.
// É daqui que o handler de saída resolve a política exigir_os_na_saida.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase constrói o caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// List lista todas as configurações.
func (uc *SettingUseCase) List() (*dto.SettingListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSettingResponse(s))
	}
	return &dto.SettingListResponse{Items: items}, nil
}

// GetByKey obtém uma configuração pela chave.
func (uc *SettingUseCase) GetByKey(key string) (*dto.SettingResponse, error) {
	setting, err := uc.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

// UpdateValue grava o valor JSON de uma configuração. O valor precisa ser
// JSON válido; a semântica de cada chave fica com quem a consome.
func (uc *SettingUseCase) UpdateValue(key string, value json.RawMessage) error {
	if len(value) == 0 || !json.Valid(value) {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateValue(key, value)
}

// RequireWorkOrder resolve a política de OS obrigatória na saída.
// Configuração ausente ou inválida cai no padrão: não exigir.
func (uc *SettingUseCase) RequireWorkOrder() bool {
	setting, err := uc.repo.GetByKey(entity.SettingRequireWorkOrder)
	if err != nil {
		return false
	}
	return setting.Bool(false)
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}
