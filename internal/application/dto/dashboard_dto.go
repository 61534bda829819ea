package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severidade dos alertas de estoque baixo.
const (
	LowStockCritical  = "critico" // saldo abaixo de 25% do mínimo
	LowStockAttention = "atencao" // saldo entre 25% e 99% do mínimo
)

// DashboardSummaryDTO resumo do painel do almoxarifado.
type DashboardSummaryDTO struct {
	ActiveMaterials  int                 `json:"materiais_ativos"`
	StockTotalValue  decimal.Decimal     `json:"valor_total_estoque"`
	StockTotalItems  decimal.Decimal     `json:"itens_em_estoque"`
	EntriesThisMonth int                 `json:"entradas_mes"`
	EntriesValue     decimal.Decimal     `json:"valor_entradas_mes"`
	ExitsThisMonth   int                 `json:"saidas_mes"`
	ActiveWorkOrders int                 `json:"os_ativas"`
	LowStockAlerts   []LowStockAlertDTO  `json:"alertas_estoque_baixo"`
	RecentMovements  []RecentMovementDTO `json:"movimentacoes_recentes"`
}

// LowStockAlertDTO material abaixo do estoque mínimo, já classificado.
type LowStockAlertDTO struct {
	MaterialID   string          `json:"id_material"`
	MaterialName string          `json:"nome_material"`
	UnitSymbol   string          `json:"sigla"`
	MinStock     decimal.Decimal `json:"estoque_minimo"`
	TotalBalance decimal.Decimal `json:"saldo_total"`
	Severity     string          `json:"severidade"`
}

// RecentMovementDTO movimentação recente com material e usuário resolvidos.
type RecentMovementDTO struct {
	MovementID   string          `json:"id"`
	Type         string          `json:"tipo_movimentacao"`
	MaterialName string          `json:"nome_material"`
	UnitSymbol   string          `json:"sigla"`
	Quantity     decimal.Decimal `json:"quantidade"`
	UserName     string          `json:"usuario,omitempty"`
	Note         string          `json:"observacao,omitempty"`
	Date         time.Time       `json:"data_mov"`
}
