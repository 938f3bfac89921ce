package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// collator para ordenar nombres de productos sin distinguir mayúsculas.
var nameCollator = collate.New(language.Spanish, collate.IgnoreCase)

// SupplyRepo implementación en memoria de SupplyRepository.
type SupplyRepo struct {
	store *Store
}

// NewSupplyRepository construye el adaptador sobre el almacén compartido.
func NewSupplyRepository(store *Store) *SupplyRepo {
	return &SupplyRepo{store: store}
}

// Create persiste el insumo y asigna el siguiente ID.
func (r *SupplyRepo) Create(supply *entity.Supply) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.createSupply(supply)
}

// GetByID devuelve una copia del insumo, o (nil, nil) si no existe.
func (r *SupplyRepo) GetByID(id int64) (*entity.Supply, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.getSupply(id)
}

// List devuelve copias de todos los insumos ordenados por nombre.
func (r *SupplyRepo) List() ([]*entity.Supply, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.listSupplies()
}

// GetForUpdate en memoria equivale a GetByID: la exclusión la da el lock del
// almacén que mantiene el TxRunner durante toda la transacción.
func (r *SupplyRepo) GetForUpdate(id int64) (*entity.Supply, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.getSupply(id)
}

// ApplyDelta aplica el delta validando que la cantidad no quede negativa.
func (r *SupplyRepo) ApplyDelta(id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.applyDelta(id, delta)
}

// ── Operaciones sobre el almacén (asumen lock tomado) ─────────────────────────

func (s *Store) createSupply(supply *entity.Supply) error {
	s.lastSupplyID++
	supply.ID = s.lastSupplyID
	cp := *supply
	s.supplies[cp.ID] = &cp
	return nil
}

func (s *Store) getSupply(id int64) (*entity.Supply, error) {
	sup, ok := s.supplies[id]
	if !ok {
		return nil, nil
	}
	cp := *sup
	return &cp, nil
}

func (s *Store) listSupplies() ([]*entity.Supply, error) {
	list := make([]*entity.Supply, 0, len(s.supplies))
	for _, sup := range s.supplies {
		cp := *sup
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if c := nameCollator.CompareString(list[i].Name, list[j].Name); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *Store) applyDelta(id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	sup, ok := s.supplies[id]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	newQty := sup.Quantity.Add(delta)
	if newQty.IsNegative() {
		return decimal.Zero, domain.ErrInvalidState
	}
	sup.Quantity = newQty
	sup.UpdatedAt = time.Now()
	return newQty, nil
}
