package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como unidad atómica sobre el almacén en memoria.
// Toma el lock de escritura durante toda la transacción (serializa las
// mutaciones y evita lecturas a medio mutar) y, si fn falla, restaura el
// snapshot previo: o se aplican todos los efectos o ninguno.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios atados a la transacción en curso.
func (r *TxRunner) Run(ctx context.Context, fn func(
	supplyRepo repository.SupplyRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.takeSnapshot()
	if err := fn(&txSupplyRepo{store: r.store}, &txMovementRepo{store: r.store}); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// txSupplyRepo variante atada a la transacción: el lock ya lo tiene el runner.
type txSupplyRepo struct {
	store *Store
}

func (r *txSupplyRepo) Create(supply *entity.Supply) error { return r.store.createSupply(supply) }
func (r *txSupplyRepo) GetByID(id int64) (*entity.Supply, error) {
	return r.store.getSupply(id)
}
func (r *txSupplyRepo) List() ([]*entity.Supply, error) { return r.store.listSupplies() }
func (r *txSupplyRepo) GetForUpdate(id int64) (*entity.Supply, error) {
	return r.store.getSupply(id)
}
func (r *txSupplyRepo) ApplyDelta(id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	return r.store.applyDelta(id, delta)
}

// txMovementRepo variante atada a la transacción.
type txMovementRepo struct {
	store *Store
}

func (r *txMovementRepo) Create(movement *entity.Movement) error {
	return r.store.createMovement(movement)
}
func (r *txMovementRepo) ListBySupply(supplyID int64) ([]*entity.Movement, error) {
	return r.store.listMovements(supplyID)
}
func (r *txMovementRepo) SumDeltas(supplyID int64) (decimal.Decimal, error) {
	return r.store.sumDeltas(supplyID)
}
