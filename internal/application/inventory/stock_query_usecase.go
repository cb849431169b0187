package inventory

import (
	"context"
	"time"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// StockQueryUseCase es la proyección de solo lectura del stock: saldos con
// metadatos de producto y evaluación del umbral de reorden. No toma bloqueos;
// tolera lecturas desfasadas por a lo sumo un ajuste en vuelo (uso consultivo,
// nunca para decisiones de mutación).
type StockQueryUseCase struct {
	stockRepo  repository.StockQueryRepository
	ledgerRepo repository.LedgerRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockQueryRepository, ledgerRepo repository.LedgerRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, ledgerRepo: ledgerRepo}
}

// ListStock devuelve los saldos con below_reorder = cantidad <= nivel de reorden.
// category es opcional (vacío = todas las categorías).
func (uc *StockQueryUseCase) ListStock(ctx context.Context, category string, limit, offset int) ([]dto.StockItemResponse, error) {
	rows, err := uc.stockRepo.ListStock(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockItemResponse{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			Category:     r.Category,
			Quantity:     r.Quantity,
			UnitMeasure:  r.UnitMeasure,
			ReorderLevel: r.ReorderLevel,
			BelowReorder: r.Quantity.LessThanOrEqual(r.ReorderLevel),
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return items, nil
}

// Audit reporta los productos cuyo saldo no coincide con la suma de asientos
// del libro. En operación normal la lista es vacía; cualquier fila indica
// escrituras por fuera del motor y requiere conciliación.
func (uc *StockQueryUseCase) Audit(ctx context.Context) ([]dto.AuditMismatchResponse, error) {
	rows, err := uc.stockRepo.AuditMismatches(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditMismatchResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AuditMismatchResponse{
			ProductID:       r.ProductID,
			SKU:             r.SKU,
			BalanceQuantity: r.BalanceQuantity,
			LedgerSum:       r.LedgerSum,
			Difference:      r.BalanceQuantity.Sub(r.LedgerSum),
		})
	}
	return out, nil
}

// ListLedgerByProduct lista los asientos del libro de un producto en un rango de fechas.
func (uc *StockQueryUseCase) ListLedgerByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLedgerResponses(entries), nil
}

// ListLedgerBySource lista los asientos que comparten una identidad de transacción.
func (uc *StockQueryUseCase) ListLedgerBySource(ctx context.Context, sourceTxID string) ([]dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.ListBySourceTransaction(sourceTxID)
	if err != nil {
		return nil, err
	}
	return toLedgerResponses(entries), nil
}

func toLedgerResponses(entries []*entity.LedgerEntry) []dto.LedgerEntryResponse {
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryResponse{
			ID:                  e.ID,
			ProductID:           e.ProductID,
			QuantityChange:      e.QuantityChange,
			UnitMeasure:         e.UnitMeasure,
			SourceTable:         e.SourceTable,
			SourceTransactionID: e.SourceTransactionID,
			Notes:               e.Notes,
			CreatedBy:           e.CreatedBy,
			CreatedAt:           e.CreatedAt,
		})
	}
	return out
}
