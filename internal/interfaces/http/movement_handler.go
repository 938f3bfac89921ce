package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/dto"
	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	svc *inventory.Service
	log *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(svc *inventory.Service, log *logger.Logger) *MovementHandler {
	return &MovementHandler{svc: svc, log: log}
}

// Purchase godoc
// @Summary      Registrar una entrada por compra
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del insumo"
// @Param        body  body  dto.PurchaseRequest  true  "quantity > 0, description"
// @Success      201   {object}  dto.MovementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/purchases [post]
func (h *MovementHandler) Purchase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.svc.RegisterPurchase(c.Context(), id, in.Quantity, in.Description)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementDTO(movement))
}

// Use godoc
// @Summary      Registrar una salida por uso sobre un animal
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID del insumo"
// @Param        body  body  dto.UseRequest  true  "quantity > 0, animal_id, description"
// @Success      201   {object}  dto.MovementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/uses [post]
func (h *MovementHandler) Use(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.svc.RegisterUse(c.Context(), id, in.Quantity, in.AnimalID, in.Description)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementDTO(movement))
}

// Adjust godoc
// @Summary      Registrar un ajuste manual de inventario
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del insumo"
// @Param        body  body  dto.AdjustmentRequest  true  "delta (cualquier signo), description"
// @Success      201   {object}  dto.MovementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/adjustments [post]
func (h *MovementHandler) Adjust(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.svc.RegisterAdjustment(c.Context(), id, in.Delta, in.Description)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementDTO(movement))
}

// History godoc
// @Summary      Historial de movimientos de un insumo (más reciente primero)
// @Tags         movements
// @Produce      json
// @Param        id   path      int  true  "ID del insumo"
// @Success      200  {array}   dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	movements, err := h.svc.History(c.Context(), id)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.NewMovementDTO(m))
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Verificar la conciliación libro vs. stock vivo
// @Tags         movements
// @Produce      json
// @Param        id   path      int  true  "ID del insumo"
// @Success      200  {object}  dto.ReconciliationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/reconcile [get]
func (h *MovementHandler) Reconcile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	rec, err := h.svc.Reconcile(c.Context(), id)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	if !rec.Consistent {
		h.log.Error().
			Int64("supply_id", rec.SupplyID).
			Str("quantity", rec.Quantity.String()).
			Str("ledger_sum", rec.LedgerSum.String()).
			Msg("libro y stock vivo divergen")
	}
	return c.JSON(dto.ReconciliationDTO{
		SupplyID:   rec.SupplyID,
		Quantity:   rec.Quantity,
		LedgerSum:  rec.LedgerSum,
		Consistent: rec.Consistent,
	})
}
