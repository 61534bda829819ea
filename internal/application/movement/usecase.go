package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
	"github.com/obrasoft/almoxarifado-api/internal/domain/stock"
	"github.com/obrasoft/almoxarifado-api/pkg/logger"
)

// RegisterMovementUseCase é o motor de movimentação de estoque: registra
// entradas (recebimento por NF) e saídas (baixa por OS) atualizando razão,
// lote, vínculo documental e saldo com custo médio ponderado.
//
// Razão + saldo são gravados numa transação por linha, com bloqueio de linha
// (SELECT FOR UPDATE) no saldo para evitar lost updates entre lotes
// concorrentes. Lote e vínculo documental são best-effort: falha é logada e
// não derruba a linha — o razão é a fonte de verdade e não pode ser bloqueado
// por escrituração secundária.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	lotRepo      repository.LotRepository
	docRepo      repository.MovementDocumentRepository
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	lotRepo repository.LotRepository,
	docRepo repository.MovementDocumentRepository,
	locationRepo repository.LocationRepository,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		lotRepo:      lotRepo,
		docRepo:      docRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

// EntryLine é uma linha de entrada: material, quantidade e custo unitário,
// com lote opcional.
type EntryLine struct {
	MaterialID string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	LotNumber  string
	ExpiresAt  *time.Time
}

// EntryInput é um lote de entrada vinculado a uma nota fiscal.
type EntryInput struct {
	UserID      string
	LocationID  string // local de destino
	InvoiceNum  string
	InvoiceSer  string
	InvoiceDate *time.Time
	SupplierID  string
	Note        string
	Lines       []EntryLine
}

// ExitLine é uma linha de saída. Available é o saldo como lido pelo caller;
// MaterialName entra na mensagem de erro de estoque insuficiente.
type ExitLine struct {
	MaterialID   string
	MaterialName string
	Requested    decimal.Decimal
	Available    decimal.Decimal
	LotID        string
}

// ExitInput é um lote de saída vinculado (opcionalmente) a uma ordem de
// serviço. RequireWorkOrder é a política vinda das configurações, resolvida
// pelo caller e passada explicitamente — nunca lida como estado ambiente.
type ExitInput struct {
	UserID           string
	LocationID       string // local de origem
	WorkOrderID      string
	ExitDate         time.Time
	Reason           string // tipo_baixa: consumo, perda, extravio, devolucao
	ResponsibleID    string
	Note             string
	RequireWorkOrder bool
	Lines            []ExitLine
}

// LineResult é o desfecho de uma linha do lote: movimentação criada ou erro.
type LineResult struct {
	MaterialID string
	Movement   *entity.Movement
	Err        error
}

// BatchResult é o resultado de um lote: movimentações criadas e o desfecho
// linha a linha, para que o caller saiba exatamente o que foi gravado.
type BatchResult struct {
	Movements []*entity.Movement
	Lines     []LineResult
}

// RegisterEntry registra um lote de entrada. Para cada linha válida: cria o
// lote (best-effort), grava movimentação + saldo numa transação (custo médio
// ponderado recalculado) e vincula a NF (best-effort). Linha com material
// vazio ou quantidade <= 0 é ignorada sem efeito algum.
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, input EntryInput) (*BatchResult, error) {
	if input.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if input.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if loc, err := uc.locationRepo.GetByID(input.LocationID); err != nil || loc == nil {
		return nil, domain.ErrNotFound
	}

	result := &BatchResult{}
	for _, line := range input.Lines {
		if line.MaterialID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		if line.UnitCost.LessThan(decimal.Zero) {
			result.Lines = append(result.Lines, LineResult{MaterialID: line.MaterialID, Err: domain.ErrInvalidInput})
			continue
		}

		lotID := uc.createLot(line)
		mov, err := uc.applyEntryLine(ctx, input, line, lotID)
		if err != nil {
			uc.log.Warn().Err(err).
				Str("material_id", line.MaterialID).
				Msg("linha de entrada não gravada")
			result.Lines = append(result.Lines, LineResult{MaterialID: line.MaterialID, Err: err})
			continue
		}

		uc.linkInvoice(input, mov.ID)

		result.Movements = append(result.Movements, mov)
		result.Lines = append(result.Lines, LineResult{MaterialID: line.MaterialID, Movement: mov})
	}
	return result, nil
}

// createLot cria o lote quando a linha traz num_lote. Best-effort: em caso de
// falha loga e segue sem referência de lote.
func (uc *RegisterMovementUseCase) createLot(line EntryLine) *string {
	if line.LotNumber == "" {
		return nil
	}
	lot := &entity.Lot{
		ID:         uuid.New().String(),
		MaterialID: line.MaterialID,
		Number:     line.LotNumber,
		InitialQty: line.Quantity,
		ExpiresAt:  line.ExpiresAt,
		CreatedAt:  time.Now(),
	}
	if err := uc.lotRepo.Create(lot); err != nil {
		uc.log.Warn().Err(err).
			Str("material_id", line.MaterialID).
			Str("num_lote", line.LotNumber).
			Msg("falha ao criar lote; entrada segue sem lote")
		return nil
	}
	return &lot.ID
}

// applyEntryLine grava movimentação e saldo numa única transação, com a linha
// de saldo bloqueada durante o cálculo do custo médio.
func (uc *RegisterMovementUseCase) applyEntryLine(ctx context.Context, input EntryInput, line EntryLine, lotID *string) (*entity.Movement, error) {
	now := time.Now()
	unitCost := line.UnitCost
	mov := &entity.Movement{
		ID:           uuid.New().String(),
		Type:         entity.MovementEntry,
		MaterialID:   line.MaterialID,
		Quantity:     line.Quantity,
		UnitCost:     &unitCost,
		ToLocationID: &input.LocationID,
		LotID:        lotID,
		UserID:       input.UserID,
		Note:         input.Note,
		Date:         now,
		CreatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		balanceRepo repository.StockBalanceRepository,
	) error {
		balance, err := balanceRepo.GetForUpdate(line.MaterialID, input.LocationID)
		if err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if balance.ID == "" {
			// Primeiro recebimento neste local: FOR UPDATE não bloqueia linha
			// inexistente, então o INSERT condicional decide quem cria o saldo.
			balance.ID = uuid.New().String()
			balance.LotID = lotID
			balance.Quantity = line.Quantity
			balance.AvgCost = line.UnitCost
			balance.UpdatedAt = now
			created, err := balanceRepo.CreateIfAbsent(balance)
			if err != nil {
				return err
			}
			if created {
				return nil
			}
			// Outra transação criou a linha primeiro: relê sob bloqueio e mistura.
			balance, err = balanceRepo.GetForUpdate(line.MaterialID, input.LocationID)
			if err != nil {
				return err
			}
		}
		balance.AvgCost = stock.WeightedAverageCost(balance.Quantity, balance.AvgCost, line.Quantity, line.UnitCost)
		balance.Quantity = balance.Quantity.Add(line.Quantity)
		balance.UpdatedAt = now
		return balanceRepo.Upsert(balance)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// linkInvoice vincula a movimentação à NF. Best-effort: falha é logada.
func (uc *RegisterMovementUseCase) linkInvoice(input EntryInput, movementID string) {
	doc := &entity.EntryDocument{
		ID:         uuid.New().String(),
		MovementID: movementID,
		InvoiceNum: input.InvoiceNum,
		InvoiceSer: input.InvoiceSer,
		ReceivedAt: input.InvoiceDate,
		CreatedAt:  time.Now(),
	}
	if input.SupplierID != "" {
		doc.SupplierID = &input.SupplierID
	}
	if err := uc.docRepo.CreateEntryDocument(doc); err != nil {
		uc.log.Warn().Err(err).
			Str("movement_id", movementID).
			Str("num_nf", input.InvoiceNum).
			Msg("falha ao vincular NF à movimentação")
	}
}

// RegisterExit registra um lote de saída. Pré-condições (disponibilidade de
// todas as linhas e política de OS) são verificadas antes de qualquer escrita;
// depois cada linha grava movimentação + decremento de saldo numa transação e
// vincula a OS (best-effort). O saldo é grampeado em zero, nunca negativo.
func (uc *RegisterMovementUseCase) RegisterExit(ctx context.Context, input ExitInput) (*BatchResult, error) {
	if input.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if input.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.RequireWorkOrder && input.WorkOrderID == "" {
		return nil, domain.ErrWorkOrderRequired
	}
	if loc, err := uc.locationRepo.GetByID(input.LocationID); err != nil || loc == nil {
		return nil, domain.ErrNotFound
	}

	// Verificação de disponibilidade de TODAS as linhas antes de escrever.
	for _, line := range input.Lines {
		if line.MaterialID == "" || !line.Requested.GreaterThan(decimal.Zero) {
			continue
		}
		if line.Requested.GreaterThan(line.Available) {
			return nil, &domain.InsufficientStockError{
				Material:  line.MaterialName,
				Available: line.Available,
			}
		}
	}

	result := &BatchResult{}
	for _, line := range input.Lines {
		if line.MaterialID == "" || !line.Requested.GreaterThan(decimal.Zero) {
			continue
		}

		mov, err := uc.applyExitLine(ctx, input, line)
		if err != nil {
			uc.log.Warn().Err(err).
				Str("material_id", line.MaterialID).
				Msg("linha de saída não gravada")
			result.Lines = append(result.Lines, LineResult{MaterialID: line.MaterialID, Err: err})
			continue
		}

		uc.linkWorkOrder(input, mov.ID)

		result.Movements = append(result.Movements, mov)
		result.Lines = append(result.Lines, LineResult{MaterialID: line.MaterialID, Movement: mov})
	}
	return result, nil
}

// applyExitLine grava movimentação e decremento de saldo numa transação.
// Saldo ausente no local é tolerado (no-op logado): material nunca recebido
// ali não impede a baixa do razão.
func (uc *RegisterMovementUseCase) applyExitLine(ctx context.Context, input ExitInput, line ExitLine) (*entity.Movement, error) {
	now := time.Now()
	date := input.ExitDate
	if date.IsZero() {
		date = now
	}
	mov := &entity.Movement{
		ID:             uuid.New().String(),
		Type:           entity.MovementExit,
		MaterialID:     line.MaterialID,
		Quantity:       line.Requested,
		FromLocationID: &input.LocationID,
		UserID:         input.UserID,
		Note:           input.Note,
		Date:           date,
		CreatedAt:      now,
	}
	if line.LotID != "" {
		lotID := line.LotID
		mov.LotID = &lotID
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		balanceRepo repository.StockBalanceRepository,
	) error {
		balance, err := balanceRepo.GetForUpdate(line.MaterialID, input.LocationID)
		if err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if balance.ID == "" {
			uc.log.Warn().
				Str("material_id", line.MaterialID).
				Str("location_id", input.LocationID).
				Msg("saída sem saldo registrado no local; saldo não alterado")
			return nil
		}
		newQty := balance.Quantity.Sub(line.Requested)
		if newQty.LessThan(decimal.Zero) {
			newQty = decimal.Zero
		}
		balance.Quantity = newQty
		balance.UpdatedAt = now
		// Custo médio permanece: saída não altera o custo.
		return balanceRepo.Upsert(balance)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// linkWorkOrder vincula a movimentação à OS. Best-effort: falha é logada.
func (uc *RegisterMovementUseCase) linkWorkOrder(input ExitInput, movementID string) {
	doc := &entity.ExitDocument{
		ID:         uuid.New().String(),
		MovementID: movementID,
		ExitReason: input.Reason,
		CreatedAt:  time.Now(),
	}
	if input.WorkOrderID != "" {
		doc.WorkOrderID = &input.WorkOrderID
	}
	if input.ResponsibleID != "" {
		doc.ResponsibleID = &input.ResponsibleID
	}
	if err := uc.docRepo.CreateExitDocument(doc); err != nil {
		uc.log.Warn().Err(err).
			Str("movement_id", movementID).
			Msg("falha ao vincular OS à movimentação")
	}
}
