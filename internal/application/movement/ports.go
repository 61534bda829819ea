package movement

import (
	"context"

	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que razão e saldo sejam gravados
// como uma unidade (Commit) ou descartados juntos (Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		balanceRepo repository.StockBalanceRepository,
	) error) error
}
