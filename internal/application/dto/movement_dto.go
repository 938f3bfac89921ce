package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
)

// PurchaseRequest body para POST /api/supplies/:id/purchases.
type PurchaseRequest struct {
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
}

// UseRequest body para POST /api/supplies/:id/uses.
type UseRequest struct {
	Quantity    decimal.Decimal `json:"quantity"`
	AnimalID    int64           `json:"animal_id"`
	Description string          `json:"description"`
}

// AdjustmentRequest body para POST /api/supplies/:id/adjustments. Delta admite
// cualquier signo, incluido cero.
type AdjustmentRequest struct {
	Delta       decimal.Decimal `json:"delta"`
	Description string          `json:"description"`
}

// MovementDTO representación de un movimiento del libro en respuestas.
type MovementDTO struct {
	ID            int64           `json:"id"`
	SupplyID      int64           `json:"supply_id"`
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
}

// NewMovementDTO mapea la entidad a DTO.
func NewMovementDTO(m *entity.Movement) MovementDTO {
	return MovementDTO{
		ID:            m.ID,
		SupplyID:      m.SupplyID,
		TransactionID: m.TransactionID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Description:   m.Description,
		Date:          m.Date,
	}
}

// ReconciliationDTO resultado de GET /api/supplies/:id/reconcile.
type ReconciliationDTO struct {
	SupplyID   int64           `json:"supply_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	LedgerSum  decimal.Decimal `json:"ledger_sum"`
	Consistent bool            `json:"consistent"`
}
