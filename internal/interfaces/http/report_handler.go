package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/dto"
	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	domaininv "github.com/tu-usuario/finca-pro/internal/domain/inventory"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// ReportHandler maneja las consultas agregadas de inventario.
type ReportHandler struct {
	svc *inventory.Service
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *inventory.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// Value godoc
// @Summary      Valoración del inventario
// @Description  sum(precio * cantidad) sobre los insumos con precio; los que
// @Description  no tienen precio aportan 0 y se cuentan aparte.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryValueDTO
// @Router       /api/inventory/value [get]
func (h *ReportHandler) Value(c *fiber.Ctx) error {
	value, err := h.svc.Value(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(dto.InventoryValueDTO{
		TotalValue:        value.Total,
		MissingPriceCount: value.MissingPrice,
	})
}

// Expiring godoc
// @Summary      Insumos próximos a vencer dentro de la ventana indicada
// @Tags         reports
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (por defecto 30)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/expiring [get]
func (h *ReportHandler) Expiring(c *fiber.Ctx) error {
	days := domaininv.DefaultWarningWindowDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days inválido"})
		}
		days = n
	}
	list, err := h.svc.ExpiringWithin(c.Context(), days)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	out := make([]dto.SupplyDTO, 0, len(list))
	for _, item := range list {
		out = append(out, dto.NewSupplyDTO(item.Supply, item.Status))
	}
	return c.JSON(fiber.Map{
		"total":    len(out),
		"supplies": out,
	})
}
