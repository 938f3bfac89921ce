package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID de la secuencia.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (supply_id, transaction_id, type, quantity, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.SupplyID, movement.TransactionID, movement.Type,
		movement.Quantity, movement.Description, movement.Date, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListBySupply devuelve el historial de un insumo, más reciente primero.
func (r *MovementRepo) ListBySupply(supplyID int64) ([]*entity.Movement, error) {
	query := `
		SELECT id, supply_id, transaction_id, type, quantity, description, date, created_at
		FROM movements WHERE supply_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, supplyID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.SupplyID, &m.TransactionID, &m.Type,
			&m.Quantity, &m.Description, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumDeltas reproduce el historial del insumo desde 0.
func (r *MovementRepo) SumDeltas(supplyID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM movements WHERE supply_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, supplyID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum deltas: %w", err)
	}
	return sum, nil
}
