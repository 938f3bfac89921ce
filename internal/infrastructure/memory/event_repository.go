package memory

import (
	"sort"

	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación en memoria de la agenda de eventos.
type EventRepo struct {
	store *Store
}

// NewEventRepository construye el adaptador sobre el almacén compartido.
func NewEventRepository(store *Store) *EventRepo {
	return &EventRepo{store: store}
}

// Create persiste el evento y asigna el siguiente ID.
func (r *EventRepo) Create(event *entity.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.lastEventID++
	event.ID = r.store.lastEventID
	cp := *event
	r.store.events[cp.ID] = &cp
	return nil
}

// List devuelve los eventos: con fecha primero (ascendente), luego los
// pendientes de agendar ordenados por título.
func (r *EventRepo) List() ([]*entity.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		cp := *e
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.Date != nil && b.Date != nil:
			if !a.Date.Equal(*b.Date) {
				return a.Date.Before(*b.Date)
			}
			return a.ID < b.ID
		case a.Date != nil:
			return true
		case b.Date != nil:
			return false
		default:
			if a.Title != b.Title {
				return a.Title < b.Title
			}
			return a.ID < b.ID
		}
	})
	return list, nil
}
