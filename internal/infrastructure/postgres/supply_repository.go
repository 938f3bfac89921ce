package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/finca-pro/internal/domain"
	"github.com/tu-usuario/finca-pro/internal/domain/entity"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación de SupplyRepository sobre PostgreSQL (usable con pool o tx).
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

// Create persiste un insumo nuevo y asigna el ID de la secuencia.
func (r *SupplyRepo) Create(supply *entity.Supply) error {
	query := `
		INSERT INTO supplies (name, indication, quantity, unit, price, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		supply.Name, supply.Indication, supply.Quantity, supply.Unit,
		nullPrice(supply.Price), supply.ExpiresAt, supply.CreatedAt, supply.UpdatedAt,
	).Scan(&supply.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID; (nil, nil) si no existe.
func (r *SupplyRepo) GetByID(id int64) (*entity.Supply, error) {
	query := `
		SELECT id, name, indication, quantity, unit, price, expires_at, created_at, updated_at
		FROM supplies WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get supply")
}

// List devuelve todos los insumos ordenados por nombre sin distinguir mayúsculas.
func (r *SupplyRepo) List() ([]*entity.Supply, error) {
	query := `
		SELECT id, name, indication, quantity, unit, price, expires_at, created_at, updated_at
		FROM supplies ORDER BY lower(name) ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supply
	for rows.Next() {
		var s entity.Supply
		var price decimal.NullDecimal
		if err := rows.Scan(&s.ID, &s.Name, &s.Indication, &s.Quantity, &s.Unit,
			&price, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		if price.Valid {
			s.Price = &price.Decimal
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene el insumo bloqueando la fila (SELECT FOR UPDATE); (nil, nil) si no existe.
func (r *SupplyRepo) GetForUpdate(id int64) (*entity.Supply, error) {
	query := `
		SELECT id, name, indication, quantity, unit, price, expires_at, created_at, updated_at
		FROM supplies WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get supply for update")
}

// ApplyDelta aplica el delta sobre la fila. El CHECK (quantity >= 0) del
// esquema respalda el invariante: su violación se mapea a ErrInvalidState.
func (r *SupplyRepo) ApplyDelta(id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE supplies SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING quantity`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return decimal.Zero, domain.ErrInvalidState
		}
		return decimal.Zero, fmt.Errorf("apply delta: %w", err)
	}
	return newQty, nil
}

func (r *SupplyRepo) scanOne(row pgx.Row, op string) (*entity.Supply, error) {
	var s entity.Supply
	var price decimal.NullDecimal
	err := row.Scan(&s.ID, &s.Name, &s.Indication, &s.Quantity, &s.Unit,
		&price, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if price.Valid {
		s.Price = &price.Decimal
	}
	return &s, nil
}

func nullPrice(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}
