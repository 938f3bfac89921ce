package dto

import "github.com/tu-usuario/finca-pro/internal/domain/entity"

// RegisterEventRequest body para POST /api/events. Date es opcional y usa
// DateLayout.
type RegisterEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

// EventDTO representación de un evento en respuestas.
type EventDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

// NewEventDTO mapea la entidad a DTO; los eventos sin fecha omiten el campo.
func NewEventDTO(e *entity.Event) EventDTO {
	d := EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
	}
	if e.Date != nil {
		d.Date = e.Date.Format(DateLayout)
	}
	return d
}
