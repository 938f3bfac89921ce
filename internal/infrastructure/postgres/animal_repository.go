package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.AnimalRepository = (*AnimalRepo)(nil)

// AnimalRepo implementación del registro de animales sobre PostgreSQL.
type AnimalRepo struct {
	q Querier
}

// NewAnimalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnimalRepository(q Querier) *AnimalRepo {
	return &AnimalRepo{q: q}
}

// Create persiste un animal y asigna el ID de la secuencia.
func (r *AnimalRepo) Create(animal *entity.Animal) error {
	query := `
		INSERT INTO animals (tag_number, name, sex, age, mother, father)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		animal.TagNumber, animal.Name, animal.Sex, animal.Age, animal.Mother, animal.Father,
	).Scan(&animal.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

// GetByID obtiene un animal por ID; (nil, nil) si no existe.
func (r *AnimalRepo) GetByID(id int64) (*entity.Animal, error) {
	query := `
		SELECT id, tag_number, name, sex, age, mother, father
		FROM animals WHERE id = $1`
	var a entity.Animal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.TagNumber, &a.Name, &a.Sex, &a.Age, &a.Mother, &a.Father,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get animal: %w", err)
	}
	return &a, nil
}

// List devuelve los animales ordenados por nombre.
func (r *AnimalRepo) List() ([]*entity.Animal, error) {
	query := `
		SELECT id, tag_number, name, sex, age, mother, father
		FROM animals ORDER BY lower(name) ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Animal
	for rows.Next() {
		var a entity.Animal
		if err := rows.Scan(&a.ID, &a.TagNumber, &a.Name, &a.Sex, &a.Age, &a.Mother, &a.Father); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
