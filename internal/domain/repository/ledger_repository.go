package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para el libro de inventario.
// El libro es append-only: no hay Update ni Delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	ListBySourceTransaction(sourceTxID string) ([]*entity.LedgerEntry, error)
	// SumByProduct devuelve la suma de QuantityChange del producto (auditoría
	// del invariante saldo == suma del libro).
	SumByProduct(productID string) (decimal.Decimal, error)
}
