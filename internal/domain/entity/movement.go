package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypePurchase   = "purchase-entry" // entrada por compra
	MovementTypeUse        = "use-exit"       // salida por uso
	MovementTypeAdjustment = "adjustment"     // ajuste de inventario
)

// Movement es un registro inmutable del libro de movimientos: explica un
// cambio de stock de un insumo. Quantity es el delta firmado (positivo
// entrada/ajuste+, negativo salida). Nunca se actualiza ni se borra.
type Movement struct {
	ID            int64
	SupplyID      int64
	TransactionID string // agrupa los efectos de una misma operación atómica
	Type          string
	Quantity      decimal.Decimal
	Description   string
	Date          time.Time
	CreatedAt     time.Time
}
