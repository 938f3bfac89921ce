package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/dto"
	"github.com/tu-usuario/finca-pro/internal/application/registry"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// AnimalHandler maneja las peticiones HTTP del registro de animales.
type AnimalHandler struct {
	uc  *registry.AnimalUseCase
	log *logger.Logger
}

// NewAnimalHandler construye el handler.
func NewAnimalHandler(uc *registry.AnimalUseCase, log *logger.Logger) *AnimalHandler {
	return &AnimalHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Dar de alta un animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAnimalRequest  true  "tag_number, name, sex (Macho|Hembra), age, mother/father opcionales"
// @Success      201   {object}  dto.AnimalDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/animals [post]
func (h *AnimalHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterAnimalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	animal, err := h.uc.Register(c.Context(), registry.RegisterAnimalInput{
		TagNumber: in.TagNumber,
		Name:      in.Name,
		Sex:       in.Sex,
		Age:       in.Age,
		Mother:    in.Mother,
		Father:    in.Father,
	})
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewAnimalDTO(animal))
}

// GetByID godoc
// @Summary      Obtener un animal por ID
// @Tags         animals
// @Produce      json
// @Param        id   path      int  true  "ID del animal"
// @Success      200  {object}  dto.AnimalDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [get]
func (h *AnimalHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	animal, err := h.uc.Find(c.Context(), id)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(dto.NewAnimalDTO(animal))
}

// List godoc
// @Summary      Listar los animales del registro
// @Tags         animals
// @Produce      json
// @Success      200  {array}  dto.AnimalDTO
// @Router       /api/animals [get]
func (h *AnimalHandler) List(c *fiber.Ctx) error {
	animals, err := h.uc.List(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	out := make([]dto.AnimalDTO, 0, len(animals))
	for _, a := range animals {
		out = append(out, dto.NewAnimalDTO(a))
	}
	return c.JSON(out)
}
