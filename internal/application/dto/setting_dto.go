package dto

import (
	"encoding/json"
	"time"
)

// SettingResponse representação de uma configuração global.
type SettingResponse struct {
	Key         string          `json:"chave"`
	Value       json.RawMessage `json:"valor"`
	Description string          `json:"descricao,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UpdateSettingRequest payload de atualização do valor de uma configuração.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"valor" validate:"required"`
}

// SettingListResponse listagem de configurações.
type SettingListResponse struct {
	Items []SettingResponse `json:"items"`
}
