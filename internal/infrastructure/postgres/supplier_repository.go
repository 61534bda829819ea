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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação do porto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository constrói o adaptador de persistência para fornecedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

const supplierColumns = "id, razao_social, nome_fantasia, cnpj, contato_nome, email, telefone, cidade, estado, ativo, created_at, updated_at"

// Create persiste um fornecedor novo. CNPJ duplicado devolve ErrDuplicate.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO fornecedores (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.LegalName, supplier.TradeName, supplier.CNPJ,
		supplier.ContactName, supplier.Email, supplier.Phone, supplier.City,
		supplier.State, supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fornecedores WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.LegalName, &s.TradeName, &s.CNPJ, &s.ContactName, &s.Email,
		&s.Phone, &s.City, &s.State, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update atualiza um fornecedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE fornecedores
		SET razao_social = $2, nome_fantasia = $3, cnpj = $4, contato_nome = $5,
		    email = $6, telefone = $7, cidade = $8, estado = $9, ativo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.LegalName, supplier.TradeName, supplier.CNPJ,
		supplier.ContactName, supplier.Email, supplier.Phone, supplier.City,
		supplier.State, supplier.Active, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListActive lista os fornecedores ativos por razão social.
func (r *SupplierRepo) ListActive() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fornecedores WHERE ativo = true ORDER BY razao_social`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.LegalName, &s.TradeName, &s.CNPJ, &s.ContactName,
			&s.Email, &s.Phone, &s.City, &s.State, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate faz a exclusão lógica do fornecedor.
func (r *SupplierRepo) Deactivate(id string) error {
	query := `UPDATE fornecedores SET ativo = false, updated_at = now() WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
