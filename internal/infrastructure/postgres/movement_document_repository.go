package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovementDocumentRepository = (*MovementDocumentRepo)(nil)

// MovementDocumentRepo implementação dos vínculos NF/OS sobre PostgreSQL.
type MovementDocumentRepo struct {
	q Querier
}

// NewMovementDocumentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementDocumentRepository(q Querier) *MovementDocumentRepo {
	return &MovementDocumentRepo{q: q}
}

// CreateEntryDocument persiste o vínculo movimentação -> nota fiscal.
func (r *MovementDocumentRepo) CreateEntryDocument(doc *entity.EntryDocument) error {
	query := `
		INSERT INTO mov_entrada_nf (id, id_mov, num_nf, serie_nf, data_recebimento, id_fornecedor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.MovementID, doc.InvoiceNum, doc.InvoiceSer,
		doc.ReceivedAt, doc.SupplierID, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create entry document: %w", err)
	}
	return nil
}

// CreateExitDocument persiste o vínculo movimentação -> ordem de serviço.
func (r *MovementDocumentRepo) CreateExitDocument(doc *entity.ExitDocument) error {
	query := `
		INSERT INTO mov_saida_os (id, id_mov, id_os, tipo_baixa, id_responsavel_retirada, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.MovementID, doc.WorkOrderID, doc.ExitReason,
		doc.ResponsibleID, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create exit document: %w", err)
	}
	return nil
}

// GetEntryDocumentByMovement obtém o vínculo de NF de uma movimentação.
func (r *MovementDocumentRepo) GetEntryDocumentByMovement(movementID string) (*entity.EntryDocument, error) {
	query := `
		SELECT id, id_mov, num_nf, serie_nf, data_recebimento, id_fornecedor, created_at
		FROM mov_entrada_nf WHERE id_mov = $1`
	var d entity.EntryDocument
	err := r.q.QueryRow(context.Background(), query, movementID).Scan(
		&d.ID, &d.MovementID, &d.InvoiceNum, &d.InvoiceSer, &d.ReceivedAt, &d.SupplierID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry document: %w", err)
	}
	return &d, nil
}

// GetExitDocumentByMovement obtém o vínculo de OS de uma movimentação.
func (r *MovementDocumentRepo) GetExitDocumentByMovement(movementID string) (*entity.ExitDocument, error) {
	query := `
		SELECT id, id_mov, id_os, tipo_baixa, id_responsavel_retirada, created_at
		FROM mov_saida_os WHERE id_mov = $1`
	var d entity.ExitDocument
	err := r.q.QueryRow(context.Background(), query, movementID).Scan(
		&d.ID, &d.MovementID, &d.WorkOrderID, &d.ExitReason, &d.ResponsibleID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit document: %w", err)
	}
	return &d, nil
}
