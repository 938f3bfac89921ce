package memory

import (
	"sort"

	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.AnimalRepository = (*AnimalRepo)(nil)

// AnimalRepo implementación en memoria del registro de animales.
type AnimalRepo struct {
	store *Store
}

// NewAnimalRepository construye el adaptador sobre el almacén compartido.
func NewAnimalRepository(store *Store) *AnimalRepo {
	return &AnimalRepo{store: store}
}

// Create persiste el animal y asigna el siguiente ID.
func (r *AnimalRepo) Create(animal *entity.Animal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.lastAnimalID++
	animal.ID = r.store.lastAnimalID
	cp := *animal
	r.store.animals[cp.ID] = &cp
	return nil
}

// GetByID devuelve una copia del animal, o (nil, nil) si no existe.
func (r *AnimalRepo) GetByID(id int64) (*entity.Animal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	a, ok := r.store.animals[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// List devuelve los animales ordenados por nombre.
func (r *AnimalRepo) List() ([]*entity.Animal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Animal, 0, len(r.store.animals))
	for _, a := range r.store.animals {
		cp := *a
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if c := nameCollator.CompareString(list[i].Name, list[j].Name); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}
