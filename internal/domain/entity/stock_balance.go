package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance representa el saldo actual de un producto (uno a uno con Product).
// Se crea con cantidad 0 al aprovisionar el producto y desde entonces solo lo
// muta el servicio de ajustes bajo bloqueo de fila; nunca se elimina.
// Invariante: Quantity == suma de LedgerEntry.QuantityChange del producto, y
// Quantity >= 0 en todo momento.
type StockBalance struct {
	ID          string
	ProductID   string
	Quantity    decimal.Decimal
	UnitMeasure string
	UpdatedAt   time.Time
}
