package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/application/inventory"
	"github.com/dmolina/planta-api/internal/domain"
)

// ProductionHandler maneja las órdenes de producción (protegido).
type ProductionHandler struct {
	uc *inventory.ProductionRunUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *inventory.ProductionRunUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar orden de producción
// @Description  Registra la orden y aplica sus asientos de inventario (abono del terminado, cargo de materia prima y master batch) en una sola transacción. O todo queda escrito o nada.
// @Tags         production-runs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRunRequest  true  "product_id, machine_id, cantidades, bultos consumidos y turno (DIA|TARDE|NOCHE)"
// @Success      201   {object}  dto.ProductionRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/production-runs [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateProductionRunRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la orden inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o máquina no encontrado"})
		}
		if err == domain.ErrBalanceNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BALANCE_NOT_FOUND", Message: "algún producto de la orden no tiene saldo de inventario"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MACHINE_NOT_OPERABLE", Message: "la máquina no está activa"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para los consumos de la orden"})
		}
		if err == domain.ErrLockTimeout {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "LOCK_TIMEOUT", Message: "saldos bloqueados por otra operación, reintente"})
		}
		log.Error().Err(err).Str("product_id", in.ProductID).Msg("register production run")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener orden de producción
// @Tags         production-runs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ProductionRunResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-runs/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de producción no encontrada"})
		}
		log.Error().Err(err).Msg("get production run")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar órdenes de producción
// @Tags         production-runs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ProductionRunResponse
// @Router       /api/production-runs [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	runs, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		log.Error().Err(err).Msg("list production runs")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"total": len(runs), "items": runs})
}

// Verify godoc
// @Summary      Verificar asientos de una orden
// @Description  Compara los asientos del libro anclados a la orden contra los que la orden debería haber generado. Una discrepancia devuelve 409 PARTIAL_FAILURE con el detalle.
// @Tags         production-runs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.VerifyRunResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.VerifyRunResponse
// @Router       /api/production-runs/{id}/verify [get]
func (h *ProductionHandler) Verify(c *fiber.Ctx) error {
	resp, err := h.uc.Verify(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de producción no encontrada"})
		}
		if err == domain.ErrPartialFailure && resp != nil {
			return c.Status(fiber.StatusConflict).JSON(resp)
		}
		log.Error().Err(err).Msg("verify production run")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(resp)
}
