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

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo implementación de MachineRepository sobre PostgreSQL (usable con pool o tx).
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// Create persiste una máquina.
func (r *MachineRepo) Create(machine *entity.Machine) error {
	query := `
		INSERT INTO machines (id, code, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Code, machine.Name, machine.Status, machine.CreatedAt, machine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID.
func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	query := `
		SELECT id, code, name, status, created_at, updated_at
		FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Code, &m.Name, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

// Update actualiza nombre y estado de una máquina.
func (r *MachineRepo) Update(machine *entity.Machine) error {
	query := `
		UPDATE machines SET name = $2, status = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Name, machine.Status, machine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista máquinas con paginación.
func (r *MachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	query := `
		SELECT id, code, name, status, created_at, updated_at
		FROM machines ORDER BY code ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
