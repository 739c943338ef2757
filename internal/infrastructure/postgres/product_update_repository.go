package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

var _ repository.ProductUpdateRepository = (*ProductUpdateRepo)(nil)

// ProductUpdateRepo implementación del log de auditoría de cambios de
// producto sobre PostgreSQL (usable con pool o tx).
type ProductUpdateRepo struct {
	q Querier
}

// NewProductUpdateRepository construye el adaptador del log de auditoría.
// Pasar pool o tx (Querier).
func NewProductUpdateRepository(q Querier) *ProductUpdateRepo {
	return &ProductUpdateRepo{q: q}
}

// Create persiste la fila de auditoría con timestamp del servidor y rellena
// Number y UpdatedOn desde RETURNING.
func (r *ProductUpdateRepo) Create(ctx context.Context, update *entity.ProductUpdate) error {
	query := `
		INSERT INTO productUpdates (managerID, storeID, productName, updatedOn)
		VALUES ($1, $2, $3, now())
		RETURNING updateNumber, updatedOn`
	err := r.q.QueryRow(ctx, query,
		update.ManagerID, update.StoreID, update.ProductName,
	).Scan(&update.Number, &update.UpdatedOn)
	if err != nil {
		return fmt.Errorf("insert product update: %w", err)
	}
	return nil
}
