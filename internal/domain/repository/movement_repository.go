package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
)

// MovementRepository puerto de persistencia del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	// Create agrega un movimiento al libro y asigna su ID (monotónico).
	Create(movement *entity.Movement) error
	// ListBySupply devuelve el historial de un insumo, más reciente primero
	// (fecha descendente, desempate por ID descendente).
	ListBySupply(supplyID int64) ([]*entity.Movement, error)
	// SumDeltas suma todos los deltas de un insumo en orden de inserción,
	// partiendo de 0. Sirve para verificar la conciliación contra el stock vivo.
	SumDeltas(supplyID int64) (decimal.Decimal, error)
}
