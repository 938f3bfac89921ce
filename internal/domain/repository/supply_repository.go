package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
)

// SupplyRepository puerto de persistencia del catálogo de insumos.
// GetByID y GetForUpdate devuelven (nil, nil) si el insumo no existe.
type SupplyRepository interface {
	// Create persiste un insumo nuevo y asigna su ID (monotónico, nunca reutilizado).
	Create(supply *entity.Supply) error
	GetByID(id int64) (*entity.Supply, error)
	// List devuelve todos los insumos ordenados por nombre (alfabético, sin
	// distinguir mayúsculas).
	List() ([]*entity.Supply, error)
	// GetForUpdate obtiene el insumo bloqueando su fila para mutación.
	GetForUpdate(id int64) (*entity.Supply, error)
	// ApplyDelta es el único punto de mutación de la cantidad. Falla con
	// domain.ErrInvalidState si el resultado quedaría negativo; devuelve la
	// cantidad resultante.
	ApplyDelta(id int64, delta decimal.Decimal) (decimal.Decimal, error)
}
