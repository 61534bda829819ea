package entity

import "time"

// Tipos de baixa para saídas de material.
const (
	ExitConsumption = "consumo"
	ExitLoss        = "perda"
	ExitMisplaced   = "extravio"
	ExitReturn      = "devolucao"
)

// EntryDocument vincula uma movimentação de entrada à nota fiscal de origem.
// Um-para-um com a movimentação; gravação best-effort (ver motor de movimentação).
type EntryDocument struct {
	ID         string
	MovementID string
	InvoiceNum string
	InvoiceSer string
	ReceivedAt *time.Time
	SupplierID *string
	CreatedAt  time.Time
}

// ExitDocument vincula uma movimentação de saída à ordem de serviço consumidora.
type ExitDocument struct {
	ID            string
	MovementID    string
	WorkOrderID   *string
	ExitReason    string // tipo_baixa: consumo, perda, extravio, devolucao
	ResponsibleID *string
	CreatedAt     time.Time
}
