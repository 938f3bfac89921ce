// Package registry contiene el caso de uso del registro de animales de la
// finca. Es un colaborador simple del inventario: el libro de movimientos lo
// consulta para validar y anotar las salidas por uso.
package registry

import (
	"context"
	"strings"

	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

// AnimalUseCase operaciones CRUD del registro de animales.
type AnimalUseCase struct {
	animalRepo repository.AnimalRepository
}

// NewAnimalUseCase construye el caso de uso.
func NewAnimalUseCase(animalRepo repository.AnimalRepository) *AnimalUseCase {
	return &AnimalUseCase{animalRepo: animalRepo}
}

// RegisterAnimalInput alta de un animal. Mother y Father son opcionales.
type RegisterAnimalInput struct {
	TagNumber string
	Name      string
	Sex       string
	Age       int
	Mother    string
	Father    string
}

// Register da de alta un animal en el registro.
func (uc *AnimalUseCase) Register(ctx context.Context, input RegisterAnimalInput) (*entity.Animal, error) {
	tag := strings.TrimSpace(input.TagNumber)
	name := strings.TrimSpace(input.Name)
	if tag == "" || name == "" || !entity.IsValidSex(input.Sex) || input.Age < 0 {
		return nil, domain.ErrInvalidInput
	}
	animal := &entity.Animal{
		TagNumber: tag,
		Name:      name,
		Sex:       input.Sex,
		Age:       input.Age,
		Mother:    strings.TrimSpace(input.Mother),
		Father:    strings.TrimSpace(input.Father),
	}
	if err := uc.animalRepo.Create(animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Find obtiene un animal por ID.
func (uc *AnimalUseCase) Find(ctx context.Context, id int64) (*entity.Animal, error) {
	animal, err := uc.animalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	return animal, nil
}

// List devuelve los animales ordenados por nombre.
func (uc *AnimalUseCase) List(ctx context.Context) ([]*entity.Animal, error) {
	return uc.animalRepo.List()
}
