// Package agenda contiene el caso de uso de la agenda de eventos de la finca
// (vacunaciones, desparasitaciones, visitas del veterinario).
package agenda

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

// EventUseCase operaciones de la agenda.
type EventUseCase struct {
	eventRepo repository.EventRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(eventRepo repository.EventRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo}
}

// RegisterEventInput alta de un evento. Date es opcional.
type RegisterEventInput struct {
	Title       string
	Description string
	Date        *time.Time
}

// Register agrega un evento a la agenda.
func (uc *EventUseCase) Register(ctx context.Context, input RegisterEventInput) (*entity.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}
	event := &entity.Event{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
	}
	if err := uc.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// List devuelve la agenda: eventos con fecha primero (ascendente), luego los
// pendientes de agendar.
func (uc *EventUseCase) List(ctx context.Context) ([]*entity.Event, error) {
	return uc.eventRepo.List()
}
