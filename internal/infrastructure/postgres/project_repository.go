package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementação do porto ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository constrói o adaptador de persistência para obras.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

const projectColumns = "id, nome_obra, status, endereco, cidade, estado, cep, data_inicio, data_previsao_fim, created_at, updated_at"

// Create persiste uma obra nova.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO obras (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		project.ID, project.Name, project.Status, project.Address, project.City,
		project.State, project.Zip, project.StartedAt, project.DueAt,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtém uma obra por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM obras WHERE id = $1`
	var p entity.Project
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Status, &p.Address, &p.City, &p.State, &p.Zip,
		&p.StartedAt, &p.DueAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Update atualiza uma obra existente.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE obras
		SET nome_obra = $2, status = $3, endereco = $4, cidade = $5, estado = $6,
		    cep = $7, data_inicio = $8, data_previsao_fim = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		project.ID, project.Name, project.Status, project.Address, project.City,
		project.State, project.Zip, project.StartedAt, project.DueAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List lista obras em ordem alfabética.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM obras ORDER BY nome_obra LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return scanProjects(rows)
}

// ListByStatus lista obras num status, em ordem alfabética.
func (r *ProjectRepo) ListByStatus(status string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM obras WHERE status = $1 ORDER BY nome_obra LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects by status: %w", err)
	}
	return scanProjects(rows)
}

func scanProjects(rows pgx.Rows) ([]*entity.Project, error) {
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.Address, &p.City, &p.State,
			&p.Zip, &p.StartedAt, &p.DueAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
