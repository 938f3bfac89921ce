package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain"
	domaininv "github.com/tu-usuario/finca-pro/internal/domain/inventory"
)

// InventoryValue valoración agregada del inventario. Los insumos sin precio
// registrado aportan 0 al total y se cuentan aparte para las alertas.
type InventoryValue struct {
	Total        decimal.Decimal
	MissingPrice int
}

// Value calcula la valoración del inventario: sum(precio * cantidad) sobre los
// insumos con precio; los que no tienen precio se cuentan en MissingPrice.
func (s *Service) Value(ctx context.Context) (*InventoryValue, error) {
	supplies, err := s.supplyRepo.List()
	if err != nil {
		return nil, err
	}
	result := &InventoryValue{Total: decimal.Zero}
	for _, sup := range supplies {
		if sup.Price == nil {
			result.MissingPrice++
			continue
		}
		result.Total = result.Total.Add(sup.Price.Mul(sup.Quantity))
	}
	return result, nil
}

// ExpiringWithin devuelve los insumos cuyo estado es EXPIRING_SOON para la
// ventana indicada en días (los ya vencidos no cuentan).
func (s *Service) ExpiringWithin(ctx context.Context, days int) ([]SupplyWithStatus, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}
	supplies, err := s.supplyRepo.List()
	if err != nil {
		return nil, err
	}
	now := s.now()
	var list []SupplyWithStatus
	for _, sup := range supplies {
		if status := domaininv.ClassifyExpiry(sup.ExpiresAt, now, days); status == domaininv.StatusExpiringSoon {
			list = append(list, SupplyWithStatus{Supply: sup, Status: status})
		}
	}
	return list, nil
}
