package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/planta-api/internal/application/inventory"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// fakeStockQueryRepo devuelve proyecciones enlatadas.
type fakeStockQueryRepo struct {
	rows       []repository.StockRow
	mismatches []repository.LedgerMismatch
}

var _ repository.StockQueryRepository = (*fakeStockQueryRepo)(nil)

func (r *fakeStockQueryRepo) ListStock(ctx context.Context, category string, limit, offset int) ([]repository.StockRow, error) {
	if category == "" {
		return r.rows, nil
	}
	var out []repository.StockRow
	for _, row := range r.rows {
		if row.Category == category {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeStockQueryRepo) AuditMismatches(ctx context.Context) ([]repository.LedgerMismatch, error) {
	return r.mismatches, nil
}

func TestStockQuery_BelowReorder(t *testing.T) {
	repo := &fakeStockQueryRepo{rows: []repository.StockRow{
		{ProductID: "prod-pp", SKU: "MP-PP-NAT", Category: entity.CategoryRawMaterial,
			Quantity: decimal.NewFromInt(8), ReorderLevel: decimal.NewFromInt(10)},
		{ProductID: "prod-mb", SKU: "MB-AZUL", Category: entity.CategoryMasterBatch,
			Quantity: decimal.NewFromInt(10), ReorderLevel: decimal.NewFromInt(10)},
		{ProductID: "prod-balde", SKU: "PT-BALDE-20L", Category: entity.CategoryFinishedGood,
			Quantity: decimal.NewFromInt(500), ReorderLevel: decimal.NewFromInt(100)},
	}}
	uc := inventory.NewStockQueryUseCase(repo, &fakeLedgerRepo{s: newMemStore()})

	items, err := uc.ListStock(context.Background(), "", 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].BelowReorder, "8 < 10 debe alertar")
	assert.True(t, items[1].BelowReorder, "el umbral es inclusivo: 10 <= 10 alerta")
	assert.False(t, items[2].BelowReorder, "500 > 100 no alerta")
}

func TestStockQuery_FiltraPorCategoria(t *testing.T) {
	repo := &fakeStockQueryRepo{rows: []repository.StockRow{
		{ProductID: "prod-pp", Category: entity.CategoryRawMaterial, Quantity: decimal.NewFromInt(8)},
		{ProductID: "prod-balde", Category: entity.CategoryFinishedGood, Quantity: decimal.NewFromInt(500)},
	}}
	uc := inventory.NewStockQueryUseCase(repo, &fakeLedgerRepo{s: newMemStore()})

	items, err := uc.ListStock(context.Background(), entity.CategoryRawMaterial, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "prod-pp", items[0].ProductID)
}

func TestStockQuery_Audit_CalculaDiferencia(t *testing.T) {
	repo := &fakeStockQueryRepo{mismatches: []repository.LedgerMismatch{
		{ProductID: "prod-pp", SKU: "MP-PP-NAT",
			BalanceQuantity: decimal.NewFromInt(95), LedgerSum: decimal.NewFromInt(100)},
	}}
	uc := inventory.NewStockQueryUseCase(repo, &fakeLedgerRepo{s: newMemStore()})

	out, err := uc.Audit(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Difference.Equal(decimal.NewFromInt(-5)),
		"diferencia = saldo - suma del libro")
}

func TestStockQuery_Audit_SinDiscrepancias(t *testing.T) {
	uc := inventory.NewStockQueryUseCase(&fakeStockQueryRepo{}, &fakeLedgerRepo{s: newMemStore()})

	out, err := uc.Audit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStockQuery_LedgerPorProductoYRangoDeFechas(t *testing.T) {
	store := newMemStore()
	ledger := &fakeLedgerRepo{s: store}
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i, delta := range []int64{20, -5, 12} {
		require.NoError(t, ledger.Create(&entity.LedgerEntry{
			ID: string(rune('a' + i)), ProductID: "prod-pp",
			QuantityChange: decimal.NewFromInt(delta), UnitMeasure: "BULTO",
			SourceTable: entity.SourceManualAdjustment, SourceTransactionID: "tx-1",
			CreatedBy: testOperator, CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	uc := inventory.NewStockQueryUseCase(&fakeStockQueryRepo{}, ledger)

	from := base.Add(12 * time.Hour)
	entries, err := uc.ListLedgerByProduct(context.Background(), "prod-pp", &from, nil, 20, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "el primer asiento queda fuera del rango")

	bySource, err := uc.ListLedgerBySource(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Len(t, bySource, 3)
}
