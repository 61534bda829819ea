package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação do porto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository constrói o adaptador de persistência para materiais.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

const materialColumns = "id, codigo, nome_material, descricao, categoria, subcategoria, id_unidade_padrao, estoque_minimo, estoque_maximo, ativo, created_at, updated_at"

// Create persiste um material novo. Código duplicado devolve ErrDuplicate.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materiais (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		material.ID, material.Code, material.Name, material.Description,
		material.Category, material.Subcategory, material.UnitID,
		material.MinStock, material.MaxStock, material.Active,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtém um material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiais WHERE id = $1`
	var m entity.Material
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Code, &m.Name, &m.Description, &m.Category, &m.Subcategory,
		&m.UnitID, &m.MinStock, &m.MaxStock, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Update atualiza os atributos mutáveis de um material.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materiais
		SET codigo = $2, nome_material = $3, descricao = $4, categoria = $5,
		    subcategoria = $6, id_unidade_padrao = $7, estoque_minimo = $8,
		    estoque_maximo = $9, ativo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		material.ID, material.Code, material.Name, material.Description,
		material.Category, material.Subcategory, material.UnitID,
		material.MinStock, material.MaxStock, material.Active, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// List lista materiais com paginação; onlyActive filtra os desativados.
func (r *MaterialRepo) List(onlyActive bool, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiais`
	if onlyActive {
		query += " WHERE ativo = true"
	}
	query += " ORDER BY nome_material LIMIT $1 OFFSET $2"
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Description, &m.Category,
			&m.Subcategory, &m.UnitID, &m.MinStock, &m.MaxStock, &m.Active,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Deactivate faz a exclusão lógica: ativo = false. A linha permanece porque
// movimentações e saldos a referenciam.
func (r *MaterialRepo) Deactivate(id string) error {
	query := `UPDATE materiais SET ativo = false, updated_at = now() WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
