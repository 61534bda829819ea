package dto

import "time"

// CreateProjectRequest payload de criação de obra.
type CreateProjectRequest struct {
	Name      string     `json:"nome_obra" validate:"required"`
	Address   string     `json:"endereco"`
	City      string     `json:"cidade"`
	State     string     `json:"estado"`
	Zip       string     `json:"cep"`
	StartedAt *time.Time `json:"data_inicio"`
	DueAt     *time.Time `json:"data_previsao_fim"`
}

// UpdateProjectRequest payload de atualização parcial de obra.
type UpdateProjectRequest struct {
	Name      *string    `json:"nome_obra"`
	Status    *string    `json:"status"`
	Address   *string    `json:"endereco"`
	City      *string    `json:"cidade"`
	State     *string    `json:"estado"`
	Zip       *string    `json:"cep"`
	StartedAt *time.Time `json:"data_inicio"`
	DueAt     *time.Time `json:"data_previsao_fim"`
}

// ProjectResponse representação de obra nas respostas.
type ProjectResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"nome_obra"`
	Status    string     `json:"status"`
	Address   string     `json:"endereco,omitempty"`
	City      string     `json:"cidade,omitempty"`
	State     string     `json:"estado,omitempty"`
	Zip       string     `json:"cep,omitempty"`
	StartedAt *time.Time `json:"data_inicio,omitempty"`
	DueAt     *time.Time `json:"data_previsao_fim,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ProjectListResponse listagem paginada de obras.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
