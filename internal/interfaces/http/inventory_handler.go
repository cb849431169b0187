package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/application/inventory"
	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
)

// InventoryHandler maneja ajustes manuales, libro mayor, stock y auditoría (protegido).
type InventoryHandler struct {
	adjustmentUC *inventory.AdjustmentUseCase
	stockUC      *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustmentUC *inventory.AdjustmentUseCase, stockUC *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{adjustmentUC: adjustmentUC, stockUC: stockUC}
}

// RegisterAdjustment godoc
// @Summary      Registrar ajuste manual de inventario
// @Description  Delta con signo: positivo entrada, negativo consumo. Un delta negativo que dejaría el saldo bajo cero devuelve 409 INSUFFICIENT_STOCK.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdjustmentRequest  true  "product_id, delta, unit_measure, note"
// @Success      201   {object}  dto.RegisterAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ledgerID, err := h.adjustmentUC.Apply(c.Context(), inventory.AdjustmentInput{
		ProductID:   in.ProductID,
		Delta:       in.Delta,
		UnitMeasure: in.UnitMeasure,
		Note:        in.Note,
		SourceTable: entity.SourceManualAdjustment,
		CreatedBy:   userID,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, delta distinto de cero y unit_measure son obligatorios"})
		}
		if err == domain.ErrBalanceNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BALANCE_NOT_FOUND", Message: "el producto no tiene saldo de inventario"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el ajuste dejaría el saldo en negativo"})
		}
		if err == domain.ErrLockTimeout {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "LOCK_TIMEOUT", Message: "saldo bloqueado por otra operación, reintente"})
		}
		log.Error().Err(err).Str("product_id", in.ProductID).Msg("register adjustment")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterAdjustmentResponse{LedgerID: ledgerID})
}

// ListStock godoc
// @Summary      Consultar stock actual
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "filtrar por categoría de producto"
// @Param        limit     query  int     false  "máximo de filas (default 20)"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	items, err := h.stockUC.ListStock(c.Context(), c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría inválida"})
		}
		log.Error().Err(err).Msg("list stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// LedgerByProduct godoc
// @Summary      Historial del libro mayor de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        from    query  string  false  "fecha inicial RFC3339"
// @Param        to      query  string  false  "fecha final RFC3339"
// @Param        limit   query  int     false  "máximo de filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/ledger/product/{id} [get]
func (h *InventoryHandler) LedgerByProduct(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from debe ser RFC3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to debe ser RFC3339"})
	}

	entries, err := h.stockUC.ListLedgerByProduct(c.Context(), c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		log.Error().Err(err).Msg("ledger by product")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"total": len(entries), "entries": entries})
}

// LedgerBySource godoc
// @Summary      Asientos del libro por transacción de origen
// @Description  Devuelve todos los asientos anclados a un source_transaction_id (por ejemplo una orden de producción).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "source_transaction_id"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/inventory/ledger/source/{id} [get]
func (h *InventoryHandler) LedgerBySource(c *fiber.Ctx) error {
	entries, err := h.stockUC.ListLedgerBySource(c.Context(), c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("ledger by source")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"total": len(entries), "entries": entries})
}

// Audit godoc
// @Summary      Auditoría saldo vs libro mayor
// @Description  Lista los productos cuyo saldo materializado no coincide con la suma de sus asientos. Vacío significa consistente.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditMismatchResponse
// @Router       /api/inventory/audit [get]
func (h *InventoryHandler) Audit(c *fiber.Ctx) error {
	mismatches, err := h.stockUC.Audit(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("ledger audit")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"total": len(mismatches), "mismatches": mismatches})
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
