package inventory

import (
	"context"

	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad atómica, pasando repositorios
// atados a esa transacción. Garantiza que la mutación del catálogo y el
// append al libro de movimientos suceden juntos o no suceden.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplyRepo repository.SupplyRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
