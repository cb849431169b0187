package inventory

import (
	"context"

	"github.com/dmolina/planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Es el límite de atomicidad del motor: la mutación del saldo y su
// asiento en el libro quedan en el mismo commit, o en ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error) error

	// RunProduction abre una transacción que además incluye el repositorio de
	// órdenes de producción: el insert de la orden y sus piernas (1 a 3 ajustes)
	// comparten un único commit. Un fallo en cualquier pierna revierte todo.
	RunProduction(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
		runRepo repository.ProductionRunRepository,
	) error) error
}
