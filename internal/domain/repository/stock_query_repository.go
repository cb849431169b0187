package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockRow es la proyección de lectura de un saldo con los metadatos del producto.
// Lectura sin bloqueos; puede quedar desfasada como máximo por un ajuste en vuelo.
type StockRow struct {
	ProductID    string
	SKU          string
	ProductName  string
	Category     string
	Quantity     decimal.Decimal
	UnitMeasure  string
	ReorderLevel decimal.Decimal
	UpdatedAt    time.Time
}

// LedgerMismatch es un producto cuyo saldo no coincide con la suma del libro.
type LedgerMismatch struct {
	ProductID       string
	SKU             string
	BalanceQuantity decimal.Decimal
	LedgerSum       decimal.Decimal
}

// StockQueryRepository define el puerto de solo lectura para las vistas de stock.
type StockQueryRepository interface {
	ListStock(ctx context.Context, category string, limit, offset int) ([]StockRow, error)
	// AuditMismatches devuelve los productos donde saldo != suma de asientos.
	AuditMismatches(ctx context.Context) ([]LedgerMismatch, error)
}
