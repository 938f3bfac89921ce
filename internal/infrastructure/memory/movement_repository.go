package memory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
type MovementRepo struct {
	store *Store
}

// NewMovementRepository construye el adaptador sobre el almacén compartido.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create agrega el movimiento al libro y asigna el siguiente ID.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.createMovement(movement)
}

// ListBySupply devuelve el historial del insumo, más reciente primero.
func (r *MovementRepo) ListBySupply(supplyID int64) ([]*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.listMovements(supplyID)
}

// SumDeltas reproduce el historial del insumo desde 0.
func (r *MovementRepo) SumDeltas(supplyID int64) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.sumDeltas(supplyID)
}

// ── Operaciones sobre el almacén (asumen lock tomado) ─────────────────────────

func (s *Store) createMovement(movement *entity.Movement) error {
	s.lastMovementID++
	movement.ID = s.lastMovementID
	cp := *movement
	s.movements = append(s.movements, &cp)
	return nil
}

func (s *Store) listMovements(supplyID int64) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range s.movements {
		if m.SupplyID == supplyID {
			cp := *m
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (s *Store) sumDeltas(supplyID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range s.movements {
		if m.SupplyID == supplyID {
			total = total.Add(m.Quantity)
		}
	}
	return total, nil
}
