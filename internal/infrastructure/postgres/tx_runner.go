package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmolina/planta-api/internal/application/inventory"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Aplica
// SET LOCAL lock_timeout al abrir cada tx para que la espera por un bloqueo
// de fila sea acotada (el vencimiento se mapea a ErrLockTimeout en el repo).
type TxRunner struct {
	pool          *pgxpool.Pool
	lockTimeoutMS int
}

// NewTxRunner construye el runner con el pool y la espera máxima de bloqueo.
func NewTxRunner(pool *pgxpool.Pool, lockTimeoutMS int) *TxRunner {
	if lockTimeoutMS <= 0 {
		lockTimeoutMS = 3000
	}
	return &TxRunner{pool: pool, lockTimeoutMS: lockTimeoutMS}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	balanceRepo repository.BalanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeoutMS)); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	ledgerRepo := NewLedgerRepository(tx)
	balanceRepo := NewBalanceRepository(tx)

	if err := fn(ledgerRepo, balanceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduction inicia una transacción con los repos del motor más el de
// órdenes de producción: la orden y sus piernas comparten un único commit.
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	balanceRepo repository.BalanceRepository,
	runRepo repository.ProductionRunRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeoutMS)); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	ledgerRepo := NewLedgerRepository(tx)
	balanceRepo := NewBalanceRepository(tx)
	runRepo := NewProductionRunRepository(tx)

	if err := fn(ledgerRepo, balanceRepo, runRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
