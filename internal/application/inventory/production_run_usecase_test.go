package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/application/inventory"
	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

type runEnv struct {
	store  *memStore
	runner *fakeTxRunner
	uc     *inventory.ProductionRunUseCase
}

// newRunEnv arma una planta mínima: resina (100 bultos), master batch (50
// bultos), un balde terminado que declara ambas dependencias, una bolsa sin
// master batch, y una inyectora activa más un molino en mantenimiento.
func newRunEnv() *runEnv {
	store := newMemStore()
	runner := newFakeTxRunner(store)

	store.seedProduct(&entity.Product{
		ID: "prod-pp", SKU: "MP-PP-NAT", Name: "Polipropileno natural",
		Category: entity.CategoryRawMaterial, UnitMeasure: "BULTO",
	}, decimal.NewFromInt(100))
	store.seedProduct(&entity.Product{
		ID: "prod-mb", SKU: "MB-AZUL", Name: "Master batch azul",
		Category: entity.CategoryMasterBatch, UnitMeasure: "BULTO",
	}, decimal.NewFromInt(50))
	store.seedProduct(&entity.Product{
		ID: "prod-balde", SKU: "PT-BALDE-20L", Name: "Balde 20L azul",
		Category: entity.CategoryFinishedGood, UnitMeasure: "UN",
		RawMaterialID: strPtr("prod-pp"), MasterBatchID: strPtr("prod-mb"),
	}, decimal.Zero)
	store.seedProduct(&entity.Product{
		ID: "prod-bolsa", SKU: "PT-BOLSA-NAT", Name: "Bolsa natural",
		Category: entity.CategoryFinishedGood, UnitMeasure: "UN",
		RawMaterialID: strPtr("prod-pp"), // sin master batch: producto natural
	}, decimal.Zero)

	store.seedMachine(&entity.Machine{ID: "maq-iny3", Code: "INY-03", Name: "Inyectora 3", Status: entity.MachineStatusActive})
	store.seedMachine(&entity.Machine{ID: "maq-mol1", Code: "MOL-01", Name: "Molino 1", Status: entity.MachineStatusMaintenance})

	adjustmentUC := inventory.NewAdjustmentUseCase(runner)
	uc := inventory.NewProductionRunUseCase(
		runner, adjustmentUC,
		&fakeProductRepo{s: store}, &fakeMachineRepo{s: store},
		&fakeBalanceRepo{s: store}, &fakeRunRepo{s: store}, &fakeLedgerRepo{s: store},
	)
	return &runEnv{store: store, runner: runner, uc: uc}
}

func baldeRequest() dto.CreateProductionRunRequest {
	return dto.CreateProductionRunRequest{
		ProductID:       "prod-balde",
		MachineID:       "maq-iny3",
		TargetQuantity:  decimal.NewFromInt(520),
		ActualPieces:    decimal.NewFromInt(500),
		WasteQuantity:   decimal.NewFromInt(20),
		RawMaterialBags: decimal.NewFromInt(10),
		MasterBatchBags: decimal.NewFromInt(2),
		Shift:           entity.ShiftDay,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionRun_TresPiernasEnUnaTransaccion(t *testing.T) {
	env := newRunEnv()

	resp, err := env.uc.Register(context.Background(), testOperator, baldeRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.ID)

	// Saldos: crédito del terminado, débito de resina y de master batch.
	assert.True(t, env.store.balanceOf("prod-balde").Equal(decimal.NewFromInt(500)))
	assert.True(t, env.store.balanceOf("prod-pp").Equal(decimal.NewFromInt(90)))
	assert.True(t, env.store.balanceOf("prod-mb").Equal(decimal.NewFromInt(48)))

	// Tres asientos anclados al ID de la orden, todos con origen production_runs.
	entries := env.store.entriesBySource(resp.ID)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, entity.SourceProductionRun, e.SourceTable)
		assert.Equal(t, testOperator, e.CreatedBy)
	}
	// Orden fijo de piernas: crédito, resina, master batch.
	assert.Equal(t, "prod-balde", entries[0].ProductID)
	assert.True(t, entries[0].QuantityChange.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "prod-pp", entries[1].ProductID)
	assert.True(t, entries[1].QuantityChange.Equal(decimal.NewFromInt(-10)))
	assert.Equal(t, "prod-mb", entries[2].ProductID)
	assert.True(t, entries[2].QuantityChange.Equal(decimal.NewFromInt(-2)))

	// La orden quedó persistida y sirve de ancla.
	got, err := env.uc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftDay, got.Shift)
}

// Las dependencias de consumo salen del producto terminado cuando el request
// no las trae.
func TestProductionRun_UsaDependenciasDeclaradasDelProducto(t *testing.T) {
	env := newRunEnv()
	in := baldeRequest()
	in.RawMaterialID = nil
	in.MasterBatchID = nil

	resp, err := env.uc.Register(context.Background(), testOperator, in)
	require.NoError(t, err)

	assert.Equal(t, "prod-pp", *resp.RawMaterialID)
	assert.Equal(t, "prod-mb", *resp.MasterBatchID)
	assert.True(t, env.store.balanceOf("prod-pp").Equal(decimal.NewFromInt(90)))
}

// Producto sin dependencia de master batch: los bultos enviados se tratan como
// cero, no como error. Solo dos piernas.
func TestProductionRun_SinDependenciaMasterBatch_IgnoraBultos(t *testing.T) {
	env := newRunEnv()
	in := baldeRequest()
	in.ProductID = "prod-bolsa"
	in.MasterBatchBags = decimal.NewFromInt(3) // el operario lo digitó igual

	resp, err := env.uc.Register(context.Background(), testOperator, in)
	require.NoError(t, err)

	entries := env.store.entriesBySource(resp.ID)
	assert.Len(t, entries, 2, "sin dependencia declarada no hay pierna de master batch")
	assert.True(t, env.store.balanceOf("prod-mb").Equal(decimal.NewFromInt(50)),
		"el saldo de master batch no debe moverse")
	assert.True(t, resp.MasterBatchBags.IsZero(),
		"la orden persiste los bultos de master batch como cero")
	assert.Nil(t, resp.MasterBatchID)
}

func TestProductionRun_StockInsuficiente_RechazaSinEfectos(t *testing.T) {
	env := newRunEnv()
	in := baldeRequest()
	in.RawMaterialBags = decimal.NewFromInt(200) // solo hay 100 bultos

	_, err := env.uc.Register(context.Background(), testOperator, in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 0, env.store.entryCount(), "una orden rechazada no deja asientos")
	assert.True(t, env.store.balanceOf("prod-pp").Equal(decimal.NewFromInt(100)))
	assert.True(t, env.store.balanceOf("prod-balde").IsZero())
	assert.Empty(t, env.store.runs, "una orden rechazada no se persiste")
}

func TestProductionRun_Validaciones(t *testing.T) {
	env := newRunEnv()

	cases := []struct {
		name    string
		mutate  func(*dto.CreateProductionRunRequest)
		wantErr error
	}{
		{"turno inválido", func(in *dto.CreateProductionRunRequest) { in.Shift = "MADRUGADA" }, domain.ErrInvalidInput},
		{"cantidad negativa", func(in *dto.CreateProductionRunRequest) { in.WasteQuantity = decimal.NewFromInt(-1) }, domain.ErrInvalidInput},
		{"producto inexistente", func(in *dto.CreateProductionRunRequest) { in.ProductID = "prod-nope" }, domain.ErrNotFound},
		{"producto no terminado", func(in *dto.CreateProductionRunRequest) { in.ProductID = "prod-pp" }, domain.ErrInvalidInput},
		{"máquina inexistente", func(in *dto.CreateProductionRunRequest) { in.MachineID = "maq-nope" }, domain.ErrNotFound},
		{"máquina en mantenimiento", func(in *dto.CreateProductionRunRequest) { in.MachineID = "maq-mol1" }, domain.ErrConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baldeRequest()
			tc.mutate(&in)
			_, err := env.uc.Register(context.Background(), testOperator, in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Equal(t, 0, env.store.entryCount(), "ninguna orden rechazada deja asientos")
}

// Un fallo de persistencia en la última pierna revierte la transacción
// completa: ni orden, ni asientos, ni saldos movidos. Nunca un subconjunto.
func TestProductionRun_FalloEnUltimaPierna_RevierteTodo(t *testing.T) {
	env := newRunEnv()
	env.runner.failEntryAt = 3
	env.runner.failWith = errors.New("fallo de storage simulado")

	_, err := env.uc.Register(context.Background(), testOperator, baldeRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, "fallo de storage simulado")

	assert.Equal(t, 0, env.store.entryCount(), "rollback: cero asientos")
	assert.Empty(t, env.store.runs, "rollback: la orden no queda persistida")
	assert.True(t, env.store.balanceOf("prod-balde").IsZero())
	assert.True(t, env.store.balanceOf("prod-pp").Equal(decimal.NewFromInt(100)))
	assert.True(t, env.store.balanceOf("prod-mb").Equal(decimal.NewFromInt(50)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación contra el libro
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionRun_Verify_Consistente(t *testing.T) {
	env := newRunEnv()
	resp, err := env.uc.Register(context.Background(), testOperator, baldeRequest())
	require.NoError(t, err)

	verify, err := env.uc.Verify(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, verify.Consistent)
	assert.Equal(t, 3, verify.ExpectedLegs)
	assert.Equal(t, 3, verify.FoundLegs)
	assert.Len(t, verify.Entries, 3)
}

// Un asiento borrado por fuera del motor se detecta como discrepancia y se
// reporta con ErrPartialFailure para conciliación.
func TestProductionRun_Verify_AsientoFaltante_ReportaDiscrepancia(t *testing.T) {
	env := newRunEnv()
	resp, err := env.uc.Register(context.Background(), testOperator, baldeRequest())
	require.NoError(t, err)

	entries := env.store.entriesBySource(resp.ID)
	require.Len(t, entries, 3)
	env.store.removeEntry(entries[2].ID)

	verify, err := env.uc.Verify(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrPartialFailure)
	require.NotNil(t, verify, "la discrepancia viaja con el detalle encontrado")
	assert.False(t, verify.Consistent)
	assert.Equal(t, 3, verify.ExpectedLegs)
	assert.Equal(t, 2, verify.FoundLegs)
}

func TestProductionRun_Verify_OrdenInexistente(t *testing.T) {
	env := newRunEnv()
	_, err := env.uc.Verify(context.Background(), "run-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
