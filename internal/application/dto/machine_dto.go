package dto

import "time"

// CreateMachineRequest body para POST /api/machines.
type CreateMachineRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// UpdateMachineRequest actualización parcial con lista fija de campos.
type UpdateMachineRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"` // active, maintenance, retired
}

// MachineResponse máquina para respuestas HTTP.
type MachineResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MachineListResponse listado paginado de máquinas.
type MachineListResponse struct {
	Items []MachineResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
