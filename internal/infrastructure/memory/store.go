// Package memory implementa los puertos de persistencia sobre un almacén en
// memoria propio del proceso. Es el driver por defecto: una finca pequeña no
// necesita más, y el contrato de serialización por insumo se cumple con un
// único lock de escritura del almacén.
package memory

import (
	"sync"

	"github.com/tu-usuario/finca-pro/internal/domain/entity"
)

// Store es el dueño único del estado catálogo + libro + registro + agenda.
// Los contadores arrancan en 0 y viven lo que vive el proceso; los IDs son
// monotónicos y nunca se reutilizan.
//
// Regla de locking: los métodos sin mayúscula asumen mu tomado por el caller.
// Los repositorios públicos toman RLock/Lock por operación; el TxRunner toma
// Lock durante toda la transacción, de modo que ninguna lectura observa un
// estado a medio mutar.
type Store struct {
	mu sync.RWMutex

	supplies  map[int64]*entity.Supply
	movements []*entity.Movement
	animals   map[int64]*entity.Animal
	events    map[int64]*entity.Event

	lastSupplyID   int64
	lastMovementID int64
	lastAnimalID   int64
	lastEventID    int64
}

// NewStore crea el almacén vacío.
func NewStore() *Store {
	return &Store{
		supplies: make(map[int64]*entity.Supply),
		animals:  make(map[int64]*entity.Animal),
		events:   make(map[int64]*entity.Event),
	}
}

// snapshot captura el estado mutable afectado por una transacción del
// inventario: insumos (copiados por valor) y el libro. Los movimientos son
// inmutables, así que basta retener el slice header.
type snapshot struct {
	supplies       map[int64]*entity.Supply
	movements      []*entity.Movement
	lastSupplyID   int64
	lastMovementID int64
}

// takeSnapshot asume mu tomado.
func (s *Store) takeSnapshot() snapshot {
	supplies := make(map[int64]*entity.Supply, len(s.supplies))
	for id, sup := range s.supplies {
		cp := *sup
		supplies[id] = &cp
	}
	return snapshot{
		supplies:       supplies,
		movements:      s.movements,
		lastSupplyID:   s.lastSupplyID,
		lastMovementID: s.lastMovementID,
	}
}

// restore asume mu tomado.
func (s *Store) restore(snap snapshot) {
	s.supplies = snap.supplies
	s.movements = snap.movements
	s.lastSupplyID = snap.lastSupplyID
	s.lastMovementID = snap.lastMovementID
}
