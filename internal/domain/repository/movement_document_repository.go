package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// MovementDocumentRepository define o porto dos vínculos documento-movimentação
// (NF de entrada, OS de saída). Um registro por movimentação.
type MovementDocumentRepository interface {
	CreateEntryDocument(doc *entity.EntryDocument) error
	CreateExitDocument(doc *entity.ExitDocument) error
	GetEntryDocumentByMovement(movementID string) (*entity.EntryDocument, error)
	GetExitDocumentByMovement(movementID string) (*entity.ExitDocument, error)
}
