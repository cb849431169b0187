package entity

import "time"

// Estados de máquina.
const (
	MachineStatusActive      = "active"
	MachineStatusMaintenance = "maintenance"
	MachineStatusRetired     = "retired"
)

// Machine representa una máquina de la planta (inyectora, sopladora, molino).
type Machine struct {
	ID        string
	Code      string // código único de planta, ej. INY-03
	Name      string
	Status    string // active, maintenance, retired
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOperable indica si la máquina puede recibir órdenes de producción.
func (m *Machine) IsOperable() bool {
	return m.Status == MachineStatusActive
}
