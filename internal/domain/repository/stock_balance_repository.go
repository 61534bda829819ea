package repository

import "github.com/obrasoft/almoxarifado-api/internal/domain/entity"

// StockBalanceRepository define o porto para consultar/atualizar o saldo por
// (material, local). Usado dentro de transações para garantir consistência
// entre o razão e a projeção de saldo.
type StockBalanceRepository interface {
	Get(materialID, locationID string) (*entity.StockBalance, error)
	// GetForUpdate bloqueia a linha de saldo (SELECT ... FOR UPDATE) para a
	// leitura-modificação-escrita do motor de movimentação.
	GetForUpdate(materialID, locationID string) (*entity.StockBalance, error)
	// CreateIfAbsent insere a linha de saldo se ainda não existir para o par
	// (material, local). Devolve false quando outra linha venceu a corrida —
	// o caller então relê sob bloqueio. FOR UPDATE não bloqueia linha
	// inexistente; esta é a âncora do primeiro recebimento concorrente.
	CreateIfAbsent(balance *entity.StockBalance) (bool, error)
	Upsert(balance *entity.StockBalance) error
	ListByLocation(locationID string) ([]*entity.StockBalance, error)
}
