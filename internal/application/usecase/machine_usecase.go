package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// MachineUseCase casos de uso CRUD para máquinas de la planta.
type MachineUseCase struct {
	repo repository.MachineRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(repo repository.MachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

// Create crea una máquina en estado active.
func (uc *MachineUseCase) Create(in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	machine := &entity.Machine{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Status:    entity.MachineStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(machine); err != nil {
		return nil, err
	}
	return toMachineResponse(machine), nil
}

// GetByID obtiene una máquina por ID.
func (uc *MachineUseCase) GetByID(id string) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	return toMachineResponse(machine), nil
}

// Update actualiza una máquina (nombre y estado).
func (uc *MachineUseCase) Update(id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	if in.Name != nil {
		machine.Name = *in.Name
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.MachineStatusActive, entity.MachineStatusMaintenance, entity.MachineStatusRetired:
			machine.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	machine.UpdatedAt = time.Now()
	if err := uc.repo.Update(machine); err != nil {
		return nil, err
	}
	return toMachineResponse(machine), nil
}

// List lista máquinas con paginación.
func (uc *MachineUseCase) List(limit, offset int) (*dto.MachineListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMachineResponse(m))
	}
	return &dto.MachineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMachineResponse(m *entity.Machine) *dto.MachineResponse {
	if m == nil {
		return nil
	}
	return &dto.MachineResponse{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
