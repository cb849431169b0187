package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/application/usecase"
	"github.com/dmolina/planta-api/internal/domain"
)

// MachineHandler maneja el catálogo de máquinas (protegido).
type MachineHandler struct {
	uc *usecase.MachineUseCase
}

// NewMachineHandler construye el handler.
func NewMachineHandler(uc *usecase.MachineUseCase) *MachineHandler {
	return &MachineHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar máquina
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMachineRequest  true  "code y name"
// @Success      201   {object}  dto.MachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/machines [post]
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son obligatorios"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "ya existe una máquina con ese código"})
		}
		log.Error().Err(err).Msg("create machine")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener máquina
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la máquina"
// @Success      200  {object}  dto.MachineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [get]
func (h *MachineHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("get machine")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar máquina
// @Description  Cambia name y status (active, maintenance, retired). Una máquina fuera de active no acepta órdenes de producción.
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la máquina"
// @Param        body  body  dto.UpdateMachineRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.MachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [put]
func (h *MachineHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de máquina inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		log.Error().Err(err).Msg("update machine")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar máquinas
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.MachineListResponse
// @Router       /api/machines [get]
func (h *MachineHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		log.Error().Err(err).Msg("list machines")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(resp)
}
