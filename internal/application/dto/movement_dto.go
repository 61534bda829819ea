package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLineRequest linha de entrada: material, quantidade, custo e lote opcional.
type EntryLineRequest struct {
	MaterialID string          `json:"id_material" validate:"required"`
	Quantity   decimal.Decimal `json:"quantidade" validate:"required"`
	UnitCost   decimal.Decimal `json:"custo_unitario"`
	LotNumber  string          `json:"num_lote"`
	ExpiresAt  *time.Time      `json:"data_validade"`
}

// RegisterEntryRequest lote de entrada vinculado a uma nota fiscal.
type RegisterEntryRequest struct {
	LocationID  string             `json:"id_local_destino" validate:"required"`
	InvoiceNum  string             `json:"num_nf"`
	InvoiceSer  string             `json:"serie_nf"`
	InvoiceDate *time.Time         `json:"data_recebimento"`
	SupplierID  string             `json:"id_fornecedor"`
	Note        string             `json:"observacao"`
	Lines       []EntryLineRequest `json:"itens" validate:"required,min=1"`
}

// ExitLineRequest linha de saída.
type ExitLineRequest struct {
	MaterialID   string          `json:"id_material" validate:"required"`
	MaterialName string          `json:"nome_material"`
	Quantity     decimal.Decimal `json:"quantidade" validate:"required"`
	LotID        string          `json:"id_lote"`
}

// RegisterExitRequest lote de saída vinculado (opcionalmente) a uma OS.
type RegisterExitRequest struct {
	LocationID    string            `json:"id_local_origem" validate:"required"`
	WorkOrderID   string            `json:"id_os"`
	ExitDate      *time.Time        `json:"data_mov"`
	Reason        string            `json:"tipo_baixa"`
	ResponsibleID string            `json:"id_responsavel_retirada"`
	Note          string            `json:"observacao"`
	Lines         []ExitLineRequest `json:"itens" validate:"required,min=1"`
}

// MovementResponse representação de uma movimentação do razão.
type MovementResponse struct {
	ID             string           `json:"id"`
	Type           string           `json:"tipo_movimentacao"`
	MaterialID     string           `json:"id_material"`
	Quantity       decimal.Decimal  `json:"quantidade"`
	UnitCost       *decimal.Decimal `json:"custo_unitario,omitempty"`
	FromLocationID *string          `json:"id_local_origem,omitempty"`
	ToLocationID   *string          `json:"id_local_destino,omitempty"`
	LotID          *string          `json:"id_lote,omitempty"`
	UserID         string           `json:"id_usuario"`
	Note           string           `json:"observacao,omitempty"`
	Date           time.Time        `json:"data_mov"`
}

// LineResultResponse desfecho de uma linha do lote.
type LineResultResponse struct {
	MaterialID string            `json:"id_material"`
	Movement   *MovementResponse `json:"movimentacao,omitempty"`
	Error      string            `json:"erro,omitempty"`
}

// BatchResultResponse resultado de um lote de entrada/saída, linha a linha.
type BatchResultResponse struct {
	Movements []MovementResponse   `json:"movimentacoes"`
	Lines     []LineResultResponse `json:"linhas"`
}

// EntryDocumentResponse vínculo de nota fiscal de uma entrada.
type EntryDocumentResponse struct {
	InvoiceNum string     `json:"num_nf"`
	InvoiceSer string     `json:"serie_nf,omitempty"`
	ReceivedAt *time.Time `json:"data_recebimento,omitempty"`
	SupplierID *string    `json:"id_fornecedor,omitempty"`
}

// ExitDocumentResponse vínculo de ordem de serviço de uma saída.
type ExitDocumentResponse struct {
	WorkOrderID   *string `json:"id_os,omitempty"`
	ExitReason    string  `json:"tipo_baixa"`
	ResponsibleID *string `json:"id_responsavel_retirada,omitempty"`
}

// MovementDetailResponse movimentação com o documento vinculado, se houver.
type MovementDetailResponse struct {
	MovementResponse
	EntryDocument *EntryDocumentResponse `json:"nota_fiscal,omitempty"`
	ExitDocument  *ExitDocumentResponse  `json:"ordem_servico,omitempty"`
}

// MovementListResponse listagem paginada de movimentações.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
