package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes reconocidos de un asiento del libro (SourceTable).
const (
	SourceManualAdjustment = "manual_adjustments"
	SourceProductionRun    = "production_runs"
)

// LedgerEntry es un asiento inmutable del libro de inventario: un cambio de
// cantidad con signo contra un producto. Se escribe una sola vez, en la misma
// transacción que la mutación del saldo; nunca se actualiza ni elimina.
// Corregir un error requiere un asiento compensatorio explícito.
type LedgerEntry struct {
	ID                  string
	ProductID           string
	QuantityChange      decimal.Decimal // positivo = entrada, negativo = consumo
	UnitMeasure         string
	SourceTable         string // manual_adjustments | production_runs
	SourceTransactionID string // agrupa los asientos de una misma transacción lógica
	Notes               string
	CreatedBy           string
	CreatedAt           time.Time
}
