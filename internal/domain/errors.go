package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio compartilhados entre casos de uso e handlers.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthenticated    = errors.New("usuário não autenticado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrWorkOrderRequired  = errors.New("ordem de serviço obrigatória para saída")
)

// InsufficientStockError indica que a quantidade solicitada excede o saldo
// disponível. Carrega o nome do material e o disponível para a mensagem ao usuário.
type InsufficientStockError struct {
	Material  string
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %s. Disponível: %s", e.Material, e.Available.String())
}

// Is permite errors.Is(err, ErrInsufficientStock) para o tipo detalhado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
