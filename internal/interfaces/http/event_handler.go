package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/agenda"
	"github.com/tu-usuario/finca-pro/internal/application/dto"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// EventHandler maneja las peticiones HTTP de la agenda de eventos.
type EventHandler struct {
	uc  *agenda.EventUseCase
	log *logger.Logger
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *agenda.EventUseCase, log *logger.Logger) *EventHandler {
	return &EventHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Agendar un evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEventRequest  true  "title, description, date (YYYY-MM-DD, opcional)"
// @Success      201   {object}  dto.EventDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var date *time.Time
	if in.Date != "" {
		d, err := time.Parse(dto.DateLayout, in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
		}
		date = &d
	}
	event, err := h.uc.Register(c.Context(), agenda.RegisterEventInput{
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
	})
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewEventDTO(event))
}

// List godoc
// @Summary      Listar la agenda de eventos
// @Tags         events
// @Produce      json
// @Success      200  {array}  dto.EventDTO
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.uc.List(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	out := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.NewEventDTO(e))
	}
	return c.JSON(out)
}
