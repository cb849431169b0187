package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

var _ repository.ProductionRunRepository = (*ProductionRunRepo)(nil)

// ProductionRunRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductionRunRepo struct {
	q Querier
}

// NewProductionRunRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRunRepository(q Querier) *ProductionRunRepo {
	return &ProductionRunRepo{q: q}
}

const runColumns = `id, product_id, machine_id, target_quantity, actual_quantity, waste_quantity,
	raw_material_id, raw_material_bags, master_batch_id, master_batch_bags,
	shift, created_by, started_at, completed_at, created_at`

// Create persiste la orden de producción (ancla de los asientos del libro).
func (r *ProductionRunRepo) Create(run *entity.ProductionRun) error {
	query := `
		INSERT INTO production_runs (` + runColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.ProductID, run.MachineID, run.TargetQuantity, run.ActualQuantity, run.WasteQuantity,
		run.RawMaterialID, run.RawMaterialBags, run.MasterBatchID, run.MasterBatchBags,
		run.Shift, run.CreatedBy, run.StartedAt, run.CompletedAt, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production run: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *ProductionRunRepo) GetByID(id string) (*entity.ProductionRun, error) {
	query := `SELECT ` + runColumns + ` FROM production_runs WHERE id = $1`
	run, err := scanRun(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production run: %w", err)
	}
	return run, nil
}

// List lista órdenes con paginación, más recientes primero.
func (r *ProductionRunRepo) List(limit, offset int) ([]*entity.ProductionRun, error) {
	query := `SELECT ` + runColumns + ` FROM production_runs
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production runs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production run: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}

func scanRun(row pgx.Row) (*entity.ProductionRun, error) {
	var run entity.ProductionRun
	err := row.Scan(
		&run.ID, &run.ProductID, &run.MachineID, &run.TargetQuantity, &run.ActualQuantity, &run.WasteQuantity,
		&run.RawMaterialID, &run.RawMaterialBags, &run.MasterBatchID, &run.MasterBatchBags,
		&run.Shift, &run.CreatedBy, &run.StartedAt, &run.CompletedAt, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
