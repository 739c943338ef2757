package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
// Las tiendas son datos de referencia: solo lectura.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// List devuelve todas las tiendas de la cadena.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	query := `
		SELECT storeID, name, latitude, longitude, managerID, dateEstablished
		FROM store ORDER BY storeID`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	return scanStores(rows)
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	query := `
		SELECT storeID, name, latitude, longitude, managerID, dateEstablished
		FROM store WHERE storeID = $1`
	var s entity.Store
	var established pgtype.Date
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.ManagerID, &established,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	s.DateEstablished = dateOrZero(established)
	return &s, nil
}

func scanStores(rows pgx.Rows) ([]*entity.Store, error) {
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		var established pgtype.Date
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.ManagerID, &established); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		s.DateEstablished = dateOrZero(established)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// dateOrZero mapea la columna nullable dateEstablished del esquema heredado:
// NULL queda como el cero de time.Time en lugar de fallar el Scan.
func dateOrZero(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}
