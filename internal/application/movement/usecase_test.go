package movement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasoft/almoxarifado-api/internal/application/movement"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
	"github.com/obrasoft/almoxarifado-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore concentra o estado compartilhado entre os fakes, simulando o banco.
type fakeStore struct {
	movements []*entity.Movement
	balances  map[string]*entity.StockBalance // material|local
	lots      []*entity.Lot
	entryDocs []*entity.EntryDocument
	exitDocs  []*entity.ExitDocument

	// Saldos commitados por uma transação concorrente depois da leitura
	// inicial: invisíveis ao GetForUpdate, materializam quando o INSERT
	// condicional bate na constraint única.
	pendingBalances map[string]*entity.StockBalance

	failMovementCreate bool
	failLotCreate      bool
	failDocCreate      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		balances:        map[string]*entity.StockBalance{},
		pendingBalances: map[string]*entity.StockBalance{},
	}
}

func balanceKey(materialID, locationID string) string {
	return materialID + "|" + locationID
}

func (s *fakeStore) setBalance(materialID, locationID string, qty, cost decimal.Decimal) {
	s.balances[balanceKey(materialID, locationID)] = &entity.StockBalance{
		ID:         "bal-" + materialID + "-" + locationID,
		MaterialID: materialID,
		LocationID: locationID,
		Quantity:   qty,
		AvgCost:    cost,
	}
}

func (s *fakeStore) setPendingBalance(materialID, locationID string, qty, cost decimal.Decimal) {
	s.pendingBalances[balanceKey(materialID, locationID)] = &entity.StockBalance{
		ID:         "bal-concorrente",
		MaterialID: materialID,
		LocationID: locationID,
		Quantity:   qty,
		AvgCost:    cost,
	}
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.store.failMovementCreate {
		return errors.New("insert movement: boom")
	}
	r.store.movements = append(r.store.movements, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(string) (*entity.Movement, error) { return nil, nil }
func (r *fakeMovementRepo) ListByMaterial(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByLocation(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

type fakeBalanceRepo struct{ store *fakeStore }

func (r *fakeBalanceRepo) Get(materialID, locationID string) (*entity.StockBalance, error) {
	return r.GetForUpdate(materialID, locationID)
}

func (r *fakeBalanceRepo) GetForUpdate(materialID, locationID string) (*entity.StockBalance, error) {
	if b, ok := r.store.balances[balanceKey(materialID, locationID)]; ok {
		cp := *b
		return &cp, nil
	}
	// Mesmo contrato do adaptador real: stub com ID vazio quando não há linha.
	return &entity.StockBalance{MaterialID: materialID, LocationID: locationID}, nil
}

func (r *fakeBalanceRepo) CreateIfAbsent(b *entity.StockBalance) (bool, error) {
	key := balanceKey(b.MaterialID, b.LocationID)
	if pending, ok := r.store.pendingBalances[key]; ok {
		// A transação concorrente commita primeiro: a linha dela aparece e o
		// INSERT condicional não afeta nada.
		r.store.balances[key] = pending
		delete(r.store.pendingBalances, key)
		return false, nil
	}
	if _, ok := r.store.balances[key]; ok {
		return false, nil
	}
	cp := *b
	r.store.balances[key] = &cp
	return true, nil
}

func (r *fakeBalanceRepo) Upsert(b *entity.StockBalance) error {
	cp := *b
	r.store.balances[balanceKey(b.MaterialID, b.LocationID)] = &cp
	return nil
}

func (r *fakeBalanceRepo) ListByLocation(string) ([]*entity.StockBalance, error) { return nil, nil }

// fakeTxRunner executa fn sobre os fakes; em erro desfaz as escritas,
// imitando o rollback do runner real.
type fakeTxRunner struct{ store *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockBalanceRepository) error) error {
	movSnapshot := append([]*entity.Movement(nil), t.store.movements...)
	balSnapshot := map[string]*entity.StockBalance{}
	for k, v := range t.store.balances {
		cp := *v
		balSnapshot[k] = &cp
	}
	err := fn(&fakeMovementRepo{t.store}, &fakeBalanceRepo{t.store})
	if err != nil {
		t.store.movements = movSnapshot
		t.store.balances = balSnapshot
	}
	return err
}

type fakeLotRepo struct{ store *fakeStore }

func (r *fakeLotRepo) Create(lot *entity.Lot) error {
	if r.store.failLotCreate {
		return errors.New("insert lot: boom")
	}
	r.store.lots = append(r.store.lots, lot)
	return nil
}
func (r *fakeLotRepo) GetByID(string) (*entity.Lot, error)          { return nil, nil }
func (r *fakeLotRepo) ListByMaterial(string) ([]*entity.Lot, error) { return nil, nil }

type fakeDocRepo struct{ store *fakeStore }

func (r *fakeDocRepo) CreateEntryDocument(doc *entity.EntryDocument) error {
	if r.store.failDocCreate {
		return errors.New("create entry document: boom")
	}
	r.store.entryDocs = append(r.store.entryDocs, doc)
	return nil
}
func (r *fakeDocRepo) CreateExitDocument(doc *entity.ExitDocument) error {
	if r.store.failDocCreate {
		return errors.New("create exit document: boom")
	}
	r.store.exitDocs = append(r.store.exitDocs, doc)
	return nil
}
func (r *fakeDocRepo) GetEntryDocumentByMovement(string) (*entity.EntryDocument, error) {
	return nil, nil
}
func (r *fakeDocRepo) GetExitDocumentByMovement(string) (*entity.ExitDocument, error) {
	return nil, nil
}

type fakeLocationRepo struct{ locations map[string]*entity.Location }

func (r *fakeLocationRepo) Create(*entity.Location) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}
func (r *fakeLocationRepo) Update(*entity.Location) error             { return nil }
func (r *fakeLocationRepo) List(int, int) ([]*entity.Location, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUser     = "user-1"
	testLocation = "loc-central"
	cimento      = "mat-cim-001"
)

func newUseCase(store *fakeStore) *movement.RegisterMovementUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return movement.NewRegisterMovementUseCase(
		&fakeTxRunner{store},
		&fakeLotRepo{store},
		&fakeDocRepo{store},
		&fakeLocationRepo{locations: map[string]*entity.Location{
			testLocation: {ID: testLocation, Name: "Almoxarifado Central"},
		}},
		log,
	)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_PrimeiroRecebimentoCriaSaldo(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		InvoiceNum: "NF-123",
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("100"), UnitCost: dec("10"), LotNumber: "L-01"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 1)
	require.Len(t, result.Lines, 1)
	require.NoError(t, result.Lines[0].Err)

	mov := result.Movements[0]
	assert.Equal(t, entity.MovementEntry, mov.Type)
	assert.Equal(t, cimento, mov.MaterialID)
	assert.True(t, mov.Quantity.Equal(dec("100")))
	require.NotNil(t, mov.ToLocationID)
	assert.Equal(t, testLocation, *mov.ToLocationID)
	assert.Nil(t, mov.FromLocationID, "entrada não tem local de origem")
	require.NotNil(t, mov.LotID, "linha com num_lote deve referenciar o lote criado")

	balance := store.balances[balanceKey(cimento, testLocation)]
	require.NotNil(t, balance)
	assert.True(t, balance.Quantity.Equal(dec("100")))
	assert.True(t, balance.AvgCost.Equal(dec("10")), "primeiro recebimento assume o custo da linha")

	require.Len(t, store.lots, 1)
	assert.Equal(t, "L-01", store.lots[0].Number)
	require.Len(t, store.entryDocs, 1)
	assert.Equal(t, "NF-123", store.entryDocs[0].InvoiceNum)
	assert.Equal(t, mov.ID, store.entryDocs[0].MovementID)
}

func TestRegisterEntry_RecalculaCustoMedioPonderado(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	uc := newUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("50"), UnitCost: dec("16")},
		},
	})
	require.NoError(t, err)

	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(dec("150")))
	assert.True(t, balance.AvgCost.Equal(dec("12")),
		"(100*10 + 50*16) / 150 = 12, obtido %s", balance.AvgCost)
}

func TestRegisterEntry_PrimeiroRecebimentoConcorrenteSomaSaldos(t *testing.T) {
	// Dois primeiros recebimentos simultâneos do mesmo par (material, local):
	// a leitura inicial não vê linha nenhuma, mas o INSERT condicional perde
	// a corrida para o commit concorrente (100 @ 10). A linha então é relida
	// sob bloqueio e misturada — o resultado soma as duas entradas em vez de
	// sobrescrever: 100@10 + 50@16 => 150@12.
	store := newFakeStore()
	store.setPendingBalance(cimento, testLocation, dec("100"), dec("10"))
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("50"), UnitCost: dec("16")},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 1)

	balance := store.balances[balanceKey(cimento, testLocation)]
	require.NotNil(t, balance)
	assert.True(t, balance.Quantity.Equal(dec("150")),
		"as duas entradas somam, obtido %s", balance.Quantity)
	assert.True(t, balance.AvgCost.Equal(dec("12")),
		"(100*10 + 50*16) / 150 = 12, obtido %s", balance.AvgCost)
}

func TestRegisterEntry_IgnoraLinhasInvalidasSemEfeito(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: "", Quantity: dec("10"), UnitCost: dec("1")},
			{MaterialID: cimento, Quantity: decimal.Zero, UnitCost: dec("1")},
			{MaterialID: cimento, Quantity: dec("-5"), UnitCost: dec("1")},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Movements, "linhas inválidas são puladas, não erradas")
	assert.Empty(t, result.Lines)
	assert.Empty(t, store.movements)
	assert.Empty(t, store.balances)
	assert.Empty(t, store.lots)
}

func TestRegisterEntry_CustoNegativoViraErroDeLinha(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("10"), UnitCost: dec("-1")},
			{MaterialID: "mat-areia", Quantity: dec("5"), UnitCost: dec("2")},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Lines, 2)
	assert.ErrorIs(t, result.Lines[0].Err, domain.ErrInvalidInput)
	require.NoError(t, result.Lines[1].Err, "a linha válida do lote segue sendo processada")
	assert.Len(t, store.movements, 1)
}

func TestRegisterEntry_FalhaNoLoteSegueSemLote(t *testing.T) {
	store := newFakeStore()
	store.failLotCreate = true
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("10"), UnitCost: dec("5"), LotNumber: "L-02"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 1)
	assert.Nil(t, result.Movements[0].LotID, "falha no lote não derruba a entrada")
	assert.Empty(t, store.lots)

	balance := store.balances[balanceKey(cimento, testLocation)]
	require.NotNil(t, balance)
	assert.True(t, balance.Quantity.Equal(dec("10")))
}

func TestRegisterEntry_FalhaNoVinculoNFNaoDerrubaEntrada(t *testing.T) {
	store := newFakeStore()
	store.failDocCreate = true
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		InvoiceNum: "NF-999",
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("10"), UnitCost: dec("5")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Movements, 1)
	assert.Empty(t, store.entryDocs)
	assert.Len(t, store.movements, 1, "o razão permanece gravado")
}

func TestRegisterEntry_FalhaNaMovimentacaoDesfazSaldo(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	store.failMovementCreate = true
	uc := newUseCase(store)

	result, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("50"), UnitCost: dec("16")},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Error(t, result.Lines[0].Err, "falha na movimentação é fatal para a linha")

	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(dec("100")), "rollback: saldo intacto")
	assert.True(t, balance.AvgCost.Equal(dec("10")))
}

func TestRegisterEntry_SemUsuarioNaoEscreveNada(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     "",
		LocationID: testLocation,
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("10"), UnitCost: dec("5")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, store.movements)
	assert.Empty(t, store.balances)
}

func TestRegisterEntry_LocalInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), movement.EntryInput{
		UserID:     testUser,
		LocationID: "loc-fantasma",
		Lines: []movement.EntryLine{
			{MaterialID: cimento, Quantity: dec("10"), UnitCost: dec("5")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saída
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExit_BaixaSaldoSemAlterarCusto(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("120"), dec("12"))
	uc := newUseCase(store)

	result, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:      testUser,
		LocationID:  testLocation,
		WorkOrderID: "os-1",
		Reason:      entity.ExitConsumption,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, MaterialName: "Cimento CP-II", Requested: dec("30"), Available: dec("120")},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 1)

	mov := result.Movements[0]
	assert.Equal(t, entity.MovementExit, mov.Type)
	require.NotNil(t, mov.FromLocationID)
	assert.Equal(t, testLocation, *mov.FromLocationID)
	assert.Nil(t, mov.ToLocationID, "saída não tem local de destino")

	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(dec("90")))
	assert.True(t, balance.AvgCost.Equal(dec("12")), "saída não altera o custo médio")

	require.Len(t, store.exitDocs, 1)
	require.NotNil(t, store.exitDocs[0].WorkOrderID)
	assert.Equal(t, "os-1", *store.exitDocs[0].WorkOrderID)
	assert.Equal(t, entity.ExitConsumption, store.exitDocs[0].ExitReason)
}

func TestRegisterExit_NaoTocaSaldosDeOutrosPares(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	store.setBalance("mat-areia", testLocation, dec("40"), dec("3"))
	store.setBalance(cimento, "loc-obra-2", dec("60"), dec("11"))
	areiaAntes := *store.balances[balanceKey("mat-areia", testLocation)]
	outroLocalAntes := *store.balances[balanceKey(cimento, "loc-obra-2")]
	uc := newUseCase(store)

	_, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:     testUser,
		LocationID: testLocation,
		Reason:     entity.ExitConsumption,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("30"), Available: dec("100")},
		},
	})
	require.NoError(t, err)

	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(dec("70")))

	// Só a linha do par movimentado muda; as demais ficam idênticas.
	assert.Equal(t, areiaAntes, *store.balances[balanceKey("mat-areia", testLocation)])
	assert.Equal(t, outroLocalAntes, *store.balances[balanceKey(cimento, "loc-obra-2")])
}

func TestRegisterExit_InsuficienteRejeitaLoteInteiroAntesDeEscrever(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	uc := newUseCase(store)

	_, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, MaterialName: "Cimento CP-II", Requested: dec("10"), Available: dec("100")},
			{MaterialID: "mat-areia", MaterialName: "Areia média", Requested: dec("8"), Available: dec("5")},
		},
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Areia média", insufficient.Material)
	assert.True(t, insufficient.Available.Equal(dec("5")))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, store.movements, "nenhuma linha é gravada, nem as válidas")
	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(dec("100")), "saldos intactos")
}

func TestRegisterExit_SaldoNuncaFicaNegativo(t *testing.T) {
	// Disponibilidade lida pelo caller (5) maior que o saldo real (3):
	// a linha passa na pré-verificação e o decremento é grampeado em zero.
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("3"), dec("10"))
	uc := newUseCase(store)

	_, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("4"), Available: dec("5")},
		},
	})
	require.NoError(t, err)

	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(decimal.Zero),
		"saldo grampeado em zero, obtido %s", balance.Quantity)
	require.Len(t, store.movements, 1)
	assert.True(t, store.movements[0].Quantity.Equal(dec("4")),
		"o razão registra a quantidade solicitada")
}

func TestRegisterExit_SemSaldoNoLocalRegistraSomenteRazao(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	result, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("2"), Available: dec("5")},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 1)
	assert.Len(t, store.movements, 1)
	assert.Empty(t, store.balances, "sem linha de saldo, nada a decrementar")
}

func TestRegisterExit_OSObrigatoriaSemOS(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	uc := newUseCase(store)

	_, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:           testUser,
		LocationID:       testLocation,
		RequireWorkOrder: true,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("10"), Available: dec("100")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrWorkOrderRequired)
	assert.Empty(t, store.movements)
}

func TestRegisterExit_OSObrigatoriaComOSPassa(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	uc := newUseCase(store)

	_, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:           testUser,
		LocationID:       testLocation,
		WorkOrderID:      "os-7",
		RequireWorkOrder: true,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("10"), Available: dec("100")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, store.movements, 1)
}

func TestRegisterExit_SemUsuarioNaoEscreveNada(t *testing.T) {
	store := newFakeStore()
	store.setBalance(cimento, testLocation, dec("100"), dec("10"))
	uc := newUseCase(store)

	_, err := uc.RegisterExit(context.Background(), movement.ExitInput{
		UserID:     "",
		LocationID: testLocation,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("10"), Available: dec("100")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo completo
// ──────────────────────────────────────────────────────────────────────────────

// Duas entradas e uma saída sobre o mesmo material: o custo médio só muda nas
// entradas e o saldo final reflete todas as movimentações.
func TestFluxoCompleto_EntradasESaida(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines:      []movement.EntryLine{{MaterialID: cimento, Quantity: dec("100"), UnitCost: dec("10")}},
	})
	require.NoError(t, err)

	_, err = uc.RegisterEntry(ctx, movement.EntryInput{
		UserID:     testUser,
		LocationID: testLocation,
		Lines:      []movement.EntryLine{{MaterialID: cimento, Quantity: dec("50"), UnitCost: dec("16")}},
	})
	require.NoError(t, err)

	_, err = uc.RegisterExit(ctx, movement.ExitInput{
		UserID:     testUser,
		LocationID: testLocation,
		Reason:     entity.ExitConsumption,
		Lines: []movement.ExitLine{
			{MaterialID: cimento, Requested: dec("30"), Available: dec("150")},
		},
	})
	require.NoError(t, err)

	balance := store.balances[balanceKey(cimento, testLocation)]
	assert.True(t, balance.Quantity.Equal(dec("120")))
	assert.True(t, balance.AvgCost.Equal(dec("12")))
	assert.Len(t, store.movements, 3, "o razão guarda as três movimentações")
}
