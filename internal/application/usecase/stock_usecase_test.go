package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasoft/almoxarifado-api/internal/application/usecase"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
)

type fakeBalanceReader struct {
	balances map[string]*entity.StockBalance
}

func (r *fakeBalanceReader) Get(materialID, locationID string) (*entity.StockBalance, error) {
	if b, ok := r.balances[materialID+"|"+locationID]; ok {
		return b, nil
	}
	// Mesmo contrato do adaptador real: sem linha devolve saldo zerado sem ID.
	return &entity.StockBalance{}, nil
}

func (r *fakeBalanceReader) GetForUpdate(materialID, locationID string) (*entity.StockBalance, error) {
	return r.Get(materialID, locationID)
}

func (r *fakeBalanceReader) CreateIfAbsent(*entity.StockBalance) (bool, error) { return true, nil }

func (r *fakeBalanceReader) Upsert(*entity.StockBalance) error { return nil }

func (r *fakeBalanceReader) ListByLocation(string) ([]*entity.StockBalance, error) {
	return nil, nil
}

type fakeMovementReader struct {
	movements map[string]*entity.Movement
}

func (r *fakeMovementReader) Create(*entity.Movement) error { return nil }

func (r *fakeMovementReader) GetByID(id string) (*entity.Movement, error) {
	return r.movements[id], nil
}

func (r *fakeMovementReader) ListByMaterial(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

func (r *fakeMovementReader) ListByLocation(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

type fakeUnitReader struct{}

func (r *fakeUnitReader) GetByID(string) (*entity.Unit, error) { return nil, nil }
func (r *fakeUnitReader) List() ([]*entity.Unit, error)        { return nil, nil }

type fakeDocReader struct {
	entryDocs map[string]*entity.EntryDocument
	exitDocs  map[string]*entity.ExitDocument
}

func (r *fakeDocReader) CreateEntryDocument(*entity.EntryDocument) error { return nil }
func (r *fakeDocReader) CreateExitDocument(*entity.ExitDocument) error   { return nil }

func (r *fakeDocReader) GetEntryDocumentByMovement(movementID string) (*entity.EntryDocument, error) {
	return r.entryDocs[movementID], nil
}

func (r *fakeDocReader) GetExitDocumentByMovement(movementID string) (*entity.ExitDocument, error) {
	return r.exitDocs[movementID], nil
}

func TestGetMovement_EntradaTrazNotaFiscal(t *testing.T) {
	cost := decimal.RequireFromString("12.50")
	dest := "loc-1"
	movs := &fakeMovementReader{movements: map[string]*entity.Movement{
		"mov-1": {
			ID:           "mov-1",
			Type:         entity.MovementEntry,
			MaterialID:   "mat-1",
			Quantity:     decimal.NewFromInt(100),
			UnitCost:     &cost,
			ToLocationID: &dest,
			UserID:       "user-1",
		},
	}}
	docs := &fakeDocReader{entryDocs: map[string]*entity.EntryDocument{
		"mov-1": {ID: "doc-1", MovementID: "mov-1", InvoiceNum: "12345", InvoiceSer: "1"},
	}}
	uc := usecase.NewStockUseCase(&fakeBalanceReader{}, movs, &fakeUnitReader{}, docs)

	detail, err := uc.GetMovement("mov-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementEntry, detail.Type)
	require.NotNil(t, detail.EntryDocument)
	assert.Equal(t, "12345", detail.EntryDocument.InvoiceNum)
	assert.Nil(t, detail.ExitDocument)
}

func TestGetMovement_SaidaTrazOrdemDeServico(t *testing.T) {
	origin := "loc-1"
	os := "os-9"
	movs := &fakeMovementReader{movements: map[string]*entity.Movement{
		"mov-2": {
			ID:             "mov-2",
			Type:           entity.MovementExit,
			MaterialID:     "mat-1",
			Quantity:       decimal.NewFromInt(40),
			FromLocationID: &origin,
			UserID:         "user-1",
		},
	}}
	docs := &fakeDocReader{exitDocs: map[string]*entity.ExitDocument{
		"mov-2": {ID: "doc-2", MovementID: "mov-2", WorkOrderID: &os, ExitReason: entity.ExitConsumption},
	}}
	uc := usecase.NewStockUseCase(&fakeBalanceReader{}, movs, &fakeUnitReader{}, docs)

	detail, err := uc.GetMovement("mov-2")
	require.NoError(t, err)
	require.NotNil(t, detail.ExitDocument)
	assert.Equal(t, entity.ExitConsumption, detail.ExitDocument.ExitReason)
	require.NotNil(t, detail.ExitDocument.WorkOrderID)
	assert.Equal(t, "os-9", *detail.ExitDocument.WorkOrderID)
	assert.Nil(t, detail.EntryDocument)
}

func TestGetMovement_SemDocumentoVinculado(t *testing.T) {
	movs := &fakeMovementReader{movements: map[string]*entity.Movement{
		"mov-3": {ID: "mov-3", Type: entity.MovementEntry, MaterialID: "mat-1", Quantity: decimal.NewFromInt(5), UserID: "user-1"},
	}}
	uc := usecase.NewStockUseCase(&fakeBalanceReader{}, movs, &fakeUnitReader{}, &fakeDocReader{})

	detail, err := uc.GetMovement("mov-3")
	require.NoError(t, err)
	assert.Nil(t, detail.EntryDocument)
	assert.Nil(t, detail.ExitDocument)
}

func TestGetMovement_Inexistente(t *testing.T) {
	uc := usecase.NewStockUseCase(&fakeBalanceReader{}, &fakeMovementReader{}, &fakeUnitReader{}, &fakeDocReader{})

	_, err := uc.GetMovement("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Material nunca recebido no local responde saldo zero com as chaves pedidas.
func TestGetBalance_SemLinhaDevolveSaldoZero(t *testing.T) {
	uc := usecase.NewStockUseCase(&fakeBalanceReader{}, &fakeMovementReader{}, &fakeUnitReader{}, &fakeDocReader{})

	balance, err := uc.GetBalance("mat-1", "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "mat-1", balance.MaterialID)
	assert.Equal(t, "loc-1", balance.LocationID)
	assert.True(t, balance.Quantity.IsZero())
}
