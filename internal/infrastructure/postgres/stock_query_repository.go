package postgres

import (
	"context"
	"fmt"

	"github.com/dmolina/planta-api/internal/domain/repository"
)

var _ repository.StockQueryRepository = (*StockQueryRepo)(nil)

// StockQueryRepo proyección de solo lectura de saldos con metadatos de producto.
// No toma bloqueos; una lectura puede quedar desfasada por un ajuste en vuelo.
type StockQueryRepo struct {
	q Querier
}

// NewStockQueryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockQueryRepository(q Querier) *StockQueryRepo {
	return &StockQueryRepo{q: q}
}

// ListStock lista saldos unidos a producto, opcionalmente por categoría.
func (r *StockQueryRepo) ListStock(ctx context.Context, category string, limit, offset int) ([]repository.StockRow, error) {
	query := `
		SELECT b.product_id, p.sku, p.name, p.category, b.quantity, b.unit_measure, p.reorder_level, b.updated_at
		FROM stock_balances b
		JOIN products p ON p.id = b.product_id`
	args := []any{}
	pos := 1
	if category != "" {
		query += fmt.Sprintf(" WHERE p.category = $%d", pos)
		args = append(args, category)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY p.sku ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.Category,
			&row.Quantity, &row.UnitMeasure, &row.ReorderLevel, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// AuditMismatches devuelve los productos donde el saldo no coincide con la suma
// del libro. En operación normal no devuelve filas.
func (r *StockQueryRepo) AuditMismatches(ctx context.Context) ([]repository.LedgerMismatch, error) {
	query := `
		SELECT b.product_id, p.sku, b.quantity, COALESCE(l.total, 0) AS ledger_sum
		FROM stock_balances b
		JOIN products p ON p.id = b.product_id
		LEFT JOIN (
			SELECT product_id, SUM(quantity_change) AS total
			FROM ledger_entries GROUP BY product_id
		) l ON l.product_id = b.product_id
		WHERE b.quantity <> COALESCE(l.total, 0)
		ORDER BY p.sku ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("audit mismatches: %w", err)
	}
	defer rows.Close()

	var list []repository.LedgerMismatch
	for rows.Next() {
		var m repository.LedgerMismatch
		if err := rows.Scan(&m.ProductID, &m.SKU, &m.BalanceQuantity, &m.LedgerSum); err != nil {
			return nil, fmt.Errorf("scan mismatch row: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
