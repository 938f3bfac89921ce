package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación de la agenda de eventos sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento y asigna el ID de la secuencia.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (title, description, date)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		event.Title, event.Description, event.Date,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List devuelve la agenda: con fecha primero (ascendente), luego los
// pendientes de agendar por título.
func (r *EventRepo) List() ([]*entity.Event, error) {
	query := `
		SELECT id, title, description, date
		FROM events
		ORDER BY date ASC NULLS LAST, title ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		var date *time.Time
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &date); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Date = date
		list = append(list, &e)
	}
	return list, rows.Err()
}
