package repository

import "github.com/dmolina/planta-api/internal/domain/entity"

// MachineRepository define el puerto de persistencia para máquinas.
type MachineRepository interface {
	Create(machine *entity.Machine) error
	GetByID(id string) (*entity.Machine, error)
	Update(machine *entity.Machine) error
	List(limit, offset int) ([]*entity.Machine, error)
}
