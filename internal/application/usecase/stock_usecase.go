package usecase

import (
	"time"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

// StockUseCase consultas de saldo, razão de movimentações e unidades.
// Somente leitura: quem escreve no estoque é o motor de movimentação.
type StockUseCase struct {
	balanceRepo repository.StockBalanceRepository
	movRepo     repository.MovementRepository
	unitRepo    repository.UnitRepository
	docRepo     repository.MovementDocumentRepository
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(
	balanceRepo repository.StockBalanceRepository,
	movRepo repository.MovementRepository,
	unitRepo repository.UnitRepository,
	docRepo repository.MovementDocumentRepository,
) *StockUseCase {
	return &StockUseCase{balanceRepo: balanceRepo, movRepo: movRepo, unitRepo: unitRepo, docRepo: docRepo}
}

// GetBalance obtém o saldo de um material num local. Material nunca recebido
// no local devolve saldo zero, não erro.
func (uc *StockUseCase) GetBalance(materialID, locationID string) (*dto.StockBalanceResponse, error) {
	balance, err := uc.balanceRepo.Get(materialID, locationID)
	if err != nil {
		return nil, err
	}
	resp := toStockBalanceResponse(balance)
	if resp.MaterialID == "" {
		resp.MaterialID = materialID
		resp.LocationID = locationID
	}
	return resp, nil
}

// ListByLocation lista os saldos positivos de um local.
func (uc *StockUseCase) ListByLocation(locationID string) (*dto.StockByLocationResponse, error) {
	list, err := uc.balanceRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockBalanceResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toStockBalanceResponse(b))
	}
	return &dto.StockByLocationResponse{LocationID: locationID, Items: items}, nil
}

// GetMovement obtém um lançamento do razão com o documento vinculado (NF na
// entrada, OS na saída). O razão é imutável: esta é a única consulta por ID.
func (uc *StockUseCase) GetMovement(id string) (*dto.MovementDetailResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	detail := &dto.MovementDetailResponse{MovementResponse: ToMovementResponse(m)}
	switch m.Type {
	case entity.MovementEntry:
		doc, err := uc.docRepo.GetEntryDocumentByMovement(m.ID)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			detail.EntryDocument = &dto.EntryDocumentResponse{
				InvoiceNum: doc.InvoiceNum,
				InvoiceSer: doc.InvoiceSer,
				ReceivedAt: doc.ReceivedAt,
				SupplierID: doc.SupplierID,
			}
		}
	case entity.MovementExit:
		doc, err := uc.docRepo.GetExitDocumentByMovement(m.ID)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			detail.ExitDocument = &dto.ExitDocumentResponse{
				WorkOrderID:   doc.WorkOrderID,
				ExitReason:    doc.ExitReason,
				ResponsibleID: doc.ResponsibleID,
			}
		}
	}
	return detail, nil
}

// ListMovementsByMaterial lista o razão de um material num período opcional.
func (uc *StockUseCase) ListMovementsByMaterial(materialID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListByMaterial(materialID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}

// ListMovementsByLocation lista o razão de um local num período opcional.
func (uc *StockUseCase) ListMovementsByLocation(locationID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListByLocation(locationID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}

// ListUnits lista as unidades de medida.
func (uc *StockUseCase) ListUnits() ([]dto.UnitResponse, error) {
	list, err := uc.unitRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UnitResponse{ID: u.ID, Symbol: u.Symbol, Description: u.Description})
	}
	return items, nil
}

func toMovementList(list []*entity.Movement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// ToMovementResponse converte um lançamento do razão para o DTO de resposta.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Type:           m.Type,
		MaterialID:     m.MaterialID,
		Quantity:       m.Quantity,
		UnitCost:       m.UnitCost,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		LotID:          m.LotID,
		UserID:         m.UserID,
		Note:           m.Note,
		Date:           m.Date,
	}
}

func toStockBalanceResponse(b *entity.StockBalance) *dto.StockBalanceResponse {
	if b == nil {
		return &dto.StockBalanceResponse{}
	}
	return &dto.StockBalanceResponse{
		MaterialID: b.MaterialID,
		LocationID: b.LocationID,
		LotID:      b.LotID,
		Quantity:   b.Quantity,
		AvgCost:    b.AvgCost,
		UpdatedAt:  b.UpdatedAt,
	}
}
