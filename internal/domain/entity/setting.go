package entity

import (
	"encoding/json"
	"time"
)

// Chaves de configuração conhecidas.
const (
	SettingRequireWorkOrder = "exigir_os_na_saida"
)

// Setting representa uma configuração global da aplicação (chave/valor JSON).
type Setting struct {
	ID          string
	Key         string
	Value       json.RawMessage
	Description string
	UpdatedAt   time.Time
}

// Bool interpreta o valor como booleano; retorna def se ausente ou inválido.
func (s *Setting) Bool(def bool) bool {
	if s == nil || len(s.Value) == 0 {
		return def
	}
	var b bool
	if err := json.Unmarshal(s.Value, &b); err != nil {
		return def
	}
	return b
}
