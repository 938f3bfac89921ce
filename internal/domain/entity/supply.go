package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas para un insumo.
const (
	UnitMilliliter = "mL" // volumen
	UnitCount      = "U"  // unidades
	UnitKilogram   = "Kg" // peso
)

// IsValidUnit verifica que la unidad pertenezca al conjunto cerrado admitido.
func IsValidUnit(unit string) bool {
	switch unit {
	case UnitMilliliter, UnitCount, UnitKilogram:
		return true
	}
	return false
}

// Supply representa un insumo de la finca (producto veterinario o consumible).
// Quantity nunca es negativa y solo se modifica a través del libro de movimientos.
// Price es opcional: nil significa "sin precio registrado", distinto de precio 0.
type Supply struct {
	ID         int64
	Name       string // nombre del producto
	Indication string // indicación / descripción del uso
	Quantity   decimal.Decimal
	Unit       string           // mL, U, Kg
	Price      *decimal.Decimal // precio unitario, opcional
	ExpiresAt  time.Time        // fecha de caducidad
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
