package entity

import "time"

// Status de uma obra.
const (
	ProjectActive    = "ativa"
	ProjectPaused    = "pausada"
	ProjectDone      = "concluida"
	ProjectCancelled = "cancelada"
)

// Project representa uma obra (canteiro). Locais físicos e ordens de serviço
// pertencem a uma obra.
type Project struct {
	ID        string
	Name      string
	Status    string
	Address   string
	City      string
	State     string
	Zip       string
	StartedAt *time.Time
	DueAt     *time.Time // previsão de término
	CreatedAt time.Time
	UpdatedAt time.Time
}
