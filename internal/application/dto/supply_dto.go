package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/inventory"
)

// RegisterSupplyRequest body para POST /api/supplies. ExpiresAt usa DateLayout.
type RegisterSupplyRequest struct {
	Name       string           `json:"name"`
	Indication string           `json:"indication"`
	Unit       string           `json:"unit"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	ExpiresAt  string           `json:"expires_at"`
}

// SupplyDTO representación de un insumo en respuestas, con su estado derivado.
type SupplyDTO struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Indication string           `json:"indication"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Unit       string           `json:"unit"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	ExpiresAt  string           `json:"expires_at"`
	Status     string           `json:"status,omitempty"`
}

// NewSupplyDTO mapea la entidad a DTO; status vacío se omite en el JSON.
func NewSupplyDTO(s *entity.Supply, status inventory.Status) SupplyDTO {
	return SupplyDTO{
		ID:         s.ID,
		Name:       s.Name,
		Indication: s.Indication,
		Quantity:   s.Quantity,
		Unit:       s.Unit,
		Price:      s.Price,
		ExpiresAt:  s.ExpiresAt.Format(DateLayout),
		Status:     string(status),
	}
}

// InventoryValueDTO valoración agregada del inventario.
type InventoryValueDTO struct {
	TotalValue        decimal.Decimal `json:"total_value"`
	MissingPriceCount int             `json:"missing_price_count"`
}
