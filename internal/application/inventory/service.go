// Package inventory implementa el servicio de inventario de insumos: el único
// punto de entrada que usan los colaboradores externos (handlers HTTP,
// dashboard). Compone el catálogo, el libro de movimientos y la clasificación
// por caducidad.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/finca-pro/internal/domain/inventory"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

// descripción del movimiento de auditoría que emite el alta en el catálogo
const catalogRegistrationNote = "Insumo añadido al catálogo."

// Service orquesta catálogo + libro + estado de caducidad.
type Service struct {
	txRunner     TxRunner
	supplyRepo   repository.SupplyRepository
	movementRepo repository.MovementRepository
	animalRepo   repository.AnimalRepository

	warningWindowDays int
	now               func() time.Time // inyectable en tests
}

// NewService construye el servicio. warningWindowDays <= 0 usa la ventana por
// defecto de 30 días.
func NewService(
	txRunner TxRunner,
	supplyRepo repository.SupplyRepository,
	movementRepo repository.MovementRepository,
	animalRepo repository.AnimalRepository,
	warningWindowDays int,
) *Service {
	if warningWindowDays <= 0 {
		warningWindowDays = domaininv.DefaultWarningWindowDays
	}
	return &Service{
		txRunner:          txRunner,
		supplyRepo:        supplyRepo,
		movementRepo:      movementRepo,
		animalRepo:        animalRepo,
		warningWindowDays: warningWindowDays,
		now:               time.Now,
	}
}

// RegisterSupplyInput alta de un insumo en el catálogo. Todos los campos son
// obligatorios salvo Price.
type RegisterSupplyInput struct {
	Name       string
	Indication string
	Unit       string
	Price      *decimal.Decimal
	ExpiresAt  time.Time
}

// RegisterSupply da de alta un insumo. La cantidad inicial es siempre 0 (el
// stock entra con una compra, regla de negocio deliberada) y el alta emite un
// movimiento de ajuste con delta 0 para que la conciliación del libro valga
// desde el primer instante.
func (s *Service) RegisterSupply(ctx context.Context, input RegisterSupplyInput) (*entity.Supply, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Indication) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidUnit(input.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if input.ExpiresAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	txID := uuid.New().String()

	supply := &entity.Supply{
		Name:       name,
		Indication: strings.TrimSpace(input.Indication),
		Quantity:   decimal.Zero,
		Unit:       input.Unit,
		Price:      input.Price,
		ExpiresAt:  input.ExpiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.txRunner.Run(ctx, func(
		supplyRepo repository.SupplyRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := supplyRepo.Create(supply); err != nil {
			return err
		}
		audit := &entity.Movement{
			SupplyID:      supply.ID,
			TransactionID: txID,
			Type:          entity.MovementTypeAdjustment,
			Quantity:      decimal.Zero,
			Description:   catalogRegistrationNote,
			Date:          now,
			CreatedAt:     now,
		}
		return movementRepo.Create(audit)
	})
	if err != nil {
		return nil, err
	}
	return supply, nil
}

// FindSupply obtiene un insumo por ID.
func (s *Service) FindSupply(ctx context.Context, id int64) (*entity.Supply, error) {
	supply, err := s.supplyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}
	return supply, nil
}

// SupplyWithStatus insumo anotado con su clasificación de caducidad.
type SupplyWithStatus struct {
	Supply *entity.Supply
	Status domaininv.Status
}

// ListSupplies devuelve el catálogo ordenado por nombre, cada insumo anotado
// con su estado de caducidad calculado a la fecha actual.
func (s *Service) ListSupplies(ctx context.Context) ([]SupplyWithStatus, error) {
	supplies, err := s.supplyRepo.List()
	if err != nil {
		return nil, err
	}
	now := s.now()
	list := make([]SupplyWithStatus, 0, len(supplies))
	for _, sup := range supplies {
		list = append(list, SupplyWithStatus{
			Supply: sup,
			Status: domaininv.ClassifyExpiry(sup.ExpiresAt, now, s.warningWindowDays),
		})
	}
	return list, nil
}
