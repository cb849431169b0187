package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de inventario sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: el libro es append-only.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, product_id, quantity_change, unit_measure, source_table, source_transaction_id, notes, created_by, created_at`

// Create persiste un asiento del libro.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	notes := (*string)(nil)
	if entry.Notes != "" {
		notes = &entry.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.QuantityChange, entry.UnitMeasure,
		entry.SourceTable, entry.SourceTransactionID, notes, entry.CreatedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`
	e, err := scanLedgerRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return e, nil
}

// ListByProduct lista asientos de un producto en un rango de fechas.
func (r *LedgerRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger by product: %w", err)
	}
	defer rows.Close()
	return collectLedgerRows(rows)
}

// ListBySourceTransaction lista los asientos que comparten identidad de transacción
// (ej. las piernas de una orden de producción), en orden de creación.
func (r *LedgerRepo) ListBySourceTransaction(sourceTxID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE source_transaction_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, sourceTxID)
	if err != nil {
		return nil, fmt.Errorf("list ledger by source transaction: %w", err)
	}
	defer rows.Close()
	return collectLedgerRows(rows)
}

// SumByProduct devuelve la suma de cambios de cantidad de un producto.
func (r *LedgerRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity_change), 0) FROM ledger_entries WHERE product_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger by product: %w", err)
	}
	return sum, nil
}

func scanLedgerRow(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var notes *string
	err := row.Scan(
		&e.ID, &e.ProductID, &e.QuantityChange, &e.UnitMeasure,
		&e.SourceTable, &e.SourceTransactionID, &notes, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		e.Notes = *notes
	}
	return &e, nil
}

func collectLedgerRows(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
