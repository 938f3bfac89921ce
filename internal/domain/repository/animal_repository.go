package repository

import "github.com/tu-usuario/finca-pro/internal/domain/entity"

// AnimalRepository puerto de persistencia del registro de animales.
// GetByID devuelve (nil, nil) si el animal no existe.
type AnimalRepository interface {
	Create(animal *entity.Animal) error
	GetByID(id int64) (*entity.Animal, error)
	// List devuelve los animales ordenados por nombre.
	List() ([]*entity.Animal, error)
}
