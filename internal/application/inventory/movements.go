package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

// RegisterPurchase registra una entrada por compra: suma quantity al stock y
// agrega el movimiento al libro, como unidad atómica.
func (s *Service) RegisterPurchase(ctx context.Context, supplyID int64, quantity decimal.Decimal, description string) (*entity.Movement, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	movement := &entity.Movement{
		SupplyID:      supplyID,
		TransactionID: uuid.New().String(),
		Type:          entity.MovementTypePurchase,
		Quantity:      quantity,
		Description:   description,
		Date:          now,
		CreatedAt:     now,
	}

	err := s.txRunner.Run(ctx, func(
		supplyRepo repository.SupplyRepository,
		movementRepo repository.MovementRepository,
	) error {
		supply, err := supplyRepo.GetForUpdate(supplyID)
		if err != nil {
			return err
		}
		if supply == nil {
			return domain.ErrNotFound
		}
		if _, err := supplyRepo.ApplyDelta(supplyID, quantity); err != nil {
			return err
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RegisterUse registra una salida por uso sobre un animal: valida que el
// animal exista, que haya stock suficiente, resta quantity y agrega el
// movimiento con la descripción anotada con el nombre del animal.
func (s *Service) RegisterUse(ctx context.Context, supplyID int64, quantity decimal.Decimal, animalID int64, description string) (*entity.Movement, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	// El registro de animales es un colaborador de solo lectura: se consulta
	// fuera de la transacción del inventario.
	animal, err := s.animalRepo.GetByID(animalID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	movement := &entity.Movement{
		SupplyID:      supplyID,
		TransactionID: uuid.New().String(),
		Type:          entity.MovementTypeUse,
		Quantity:      quantity.Neg(),
		Description:   fmt.Sprintf("%s (Animal: %s)", description, animal.Name),
		Date:          now,
		CreatedAt:     now,
	}

	err = s.txRunner.Run(ctx, func(
		supplyRepo repository.SupplyRepository,
		movementRepo repository.MovementRepository,
	) error {
		supply, err := supplyRepo.GetForUpdate(supplyID)
		if err != nil {
			return err
		}
		if supply == nil {
			return domain.ErrNotFound
		}
		// Verificación previa a la mutación: la cantidad disponible viaja en
		// el error para que el caller pueda ajustar.
		if supply.Quantity.LessThan(quantity) {
			return &domain.InsufficientStockError{Available: supply.Quantity}
		}
		if _, err := supplyRepo.ApplyDelta(supplyID, quantity.Neg()); err != nil {
			return err
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RegisterAdjustment registra un ajuste manual. El delta admite cualquier
// signo, incluido cero; el catálogo sigue rechazando cantidades negativas
// resultantes (domain.ErrInvalidState).
func (s *Service) RegisterAdjustment(ctx context.Context, supplyID int64, delta decimal.Decimal, description string) (*entity.Movement, error) {
	now := s.now()
	movement := &entity.Movement{
		SupplyID:      supplyID,
		TransactionID: uuid.New().String(),
		Type:          entity.MovementTypeAdjustment,
		Quantity:      delta,
		Description:   description,
		Date:          now,
		CreatedAt:     now,
	}

	err := s.txRunner.Run(ctx, func(
		supplyRepo repository.SupplyRepository,
		movementRepo repository.MovementRepository,
	) error {
		supply, err := supplyRepo.GetForUpdate(supplyID)
		if err != nil {
			return err
		}
		if supply == nil {
			return domain.ErrNotFound
		}
		if _, err := supplyRepo.ApplyDelta(supplyID, delta); err != nil {
			return err
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// History devuelve el historial de movimientos de un insumo, más reciente
// primero.
func (s *Service) History(ctx context.Context, supplyID int64) ([]*entity.Movement, error) {
	supply, err := s.supplyRepo.GetByID(supplyID)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}
	return s.movementRepo.ListBySupply(supplyID)
}

// Reconciliation resultado de reproducir el historial de un insumo desde 0 y
// compararlo contra el stock vivo.
type Reconciliation struct {
	SupplyID   int64
	Quantity   decimal.Decimal // stock vivo del catálogo
	LedgerSum  decimal.Decimal // suma de deltas del libro
	Consistent bool
}

// Reconcile verifica el invariante del libro: el stock vivo debe coincidir
// con la suma de deltas del historial completo.
func (s *Service) Reconcile(ctx context.Context, supplyID int64) (*Reconciliation, error) {
	supply, err := s.supplyRepo.GetByID(supplyID)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := s.movementRepo.SumDeltas(supplyID)
	if err != nil {
		return nil, err
	}
	return &Reconciliation{
		SupplyID:   supplyID,
		Quantity:   supply.Quantity,
		LedgerSum:  sum,
		Consistent: supply.Quantity.Equal(sum),
	}, nil
}
