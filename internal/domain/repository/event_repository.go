package repository

import "github.com/tu-usuario/finca-pro/internal/domain/entity"

// EventRepository puerto de persistencia de la agenda de eventos.
type EventRepository interface {
	Create(event *entity.Event) error
	// List devuelve los eventos: con fecha primero (ascendente), luego los
	// pendientes de agendar ordenados por título.
	List() ([]*entity.Event, error)
}
