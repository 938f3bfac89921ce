package dto

import "github.com/tu-usuario/finca-pro/internal/domain/entity"

// RegisterAnimalRequest body para POST /api/animals.
type RegisterAnimalRequest struct {
	TagNumber string `json:"tag_number"`
	Name      string `json:"name"`
	Sex       string `json:"sex"`
	Age       int    `json:"age"`
	Mother    string `json:"mother,omitempty"`
	Father    string `json:"father,omitempty"`
}

// AnimalDTO representación de un animal en respuestas.
type AnimalDTO struct {
	ID        int64  `json:"id"`
	TagNumber string `json:"tag_number"`
	Name      string `json:"name"`
	Sex       string `json:"sex"`
	Age       int    `json:"age"`
	Mother    string `json:"mother,omitempty"`
	Father    string `json:"father,omitempty"`
}

// NewAnimalDTO mapea la entidad a DTO.
func NewAnimalDTO(a *entity.Animal) AnimalDTO {
	return AnimalDTO{
		ID:        a.ID,
		TagNumber: a.TagNumber,
		Name:      a.Name,
		Sex:       a.Sex,
		Age:       a.Age,
		Mother:    a.Mother,
		Father:    a.Father,
	}
}
