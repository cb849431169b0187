package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable con pool o tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Create aprovisiona el saldo de un producto (una sola vez, al crear el producto).
func (r *BalanceRepo) Create(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (id, product_id, quantity, unit_measure, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		balance.ID, balance.ProductID, balance.Quantity, balance.UnitMeasure, balance.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock balance: %w", err)
	}
	return nil
}

// GetByProduct obtiene el saldo actual de un producto sin bloquear (lectura consultiva).
func (r *BalanceRepo) GetByProduct(productID string) (*entity.StockBalance, error) {
	query := `
		SELECT id, product_id, quantity, unit_measure, updated_at
		FROM stock_balances WHERE product_id = $1`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&b.ID, &b.ProductID, &b.Quantity, &b.UnitMeasure, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE). La espera
// está acotada por el lock_timeout de la transacción; al vencer devuelve
// ErrLockTimeout (reintentable). Sin fila: ErrBalanceNotFound.
func (r *BalanceRepo) GetForUpdate(productID string) (*entity.StockBalance, error) {
	query := `
		SELECT id, product_id, quantity, unit_measure, updated_at
		FROM stock_balances WHERE product_id = $1
		FOR UPDATE`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&b.ID, &b.ProductID, &b.Quantity, &b.UnitMeasure, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}
		if isLockNotAvailable(err) {
			return nil, domain.ErrLockTimeout
		}
		return nil, fmt.Errorf("get stock balance for update: %w", err)
	}
	return &b, nil
}

// UpdateQuantity persiste la nueva cantidad de un saldo ya bloqueado.
func (r *BalanceRepo) UpdateQuantity(balance *entity.StockBalance) error {
	query := `
		UPDATE stock_balances SET quantity = $2, updated_at = $3
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, balance.ID, balance.Quantity, balance.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBalanceNotFound
	}
	return nil
}
