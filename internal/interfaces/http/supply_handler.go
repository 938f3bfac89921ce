package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/dto"
	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// SupplyHandler maneja las peticiones HTTP del catálogo de insumos.
type SupplyHandler struct {
	svc *inventory.Service
	log *logger.Logger
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(svc *inventory.Service, log *logger.Logger) *SupplyHandler {
	return &SupplyHandler{svc: svc, log: log}
}

// Register godoc
// @Summary      Dar de alta un insumo en el catálogo
// @Tags         supplies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSupplyRequest  true  "name, indication, unit (mL|U|Kg), price (opcional), expires_at (YYYY-MM-DD)"
// @Success      201   {object}  dto.SupplyDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/supplies [post]
func (h *SupplyHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	expiresAt, err := time.Parse(dto.DateLayout, in.ExpiresAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha de caducidad inválida (YYYY-MM-DD)"})
	}
	supply, err := h.svc.RegisterSupply(c.Context(), inventory.RegisterSupplyInput{
		Name:       in.Name,
		Indication: in.Indication,
		Unit:       in.Unit,
		Price:      in.Price,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSupplyDTO(supply, ""))
}

// List godoc
// @Summary      Listar el catálogo con estado de caducidad
// @Tags         supplies
// @Produce      json
// @Success      200  {array}  dto.SupplyDTO
// @Router       /api/supplies [get]
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListSupplies(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	out := make([]dto.SupplyDTO, 0, len(list))
	for _, item := range list {
		out = append(out, dto.NewSupplyDTO(item.Supply, item.Status))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un insumo por ID
// @Tags         supplies
// @Produce      json
// @Param        id   path      int  true  "ID del insumo"
// @Success      200  {object}  dto.SupplyDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [get]
func (h *SupplyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	supply, err := h.svc.FindSupply(c.Context(), id)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(dto.NewSupplyDTO(supply, ""))
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
