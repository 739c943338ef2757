package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

var _ repository.SupplyRequestRepository = (*SupplyRequestRepo)(nil)

// SupplyRequestRepo implementación del log de solicitudes de
// reabastecimiento sobre PostgreSQL (usable con pool o tx).
type SupplyRequestRepo struct {
	q Querier
}

// NewSupplyRequestRepository construye el adaptador de solicitudes.
// Pasar pool o tx (Querier).
func NewSupplyRequestRepository(q Querier) *SupplyRequestRepo {
	return &SupplyRequestRepo{q: q}
}

// Create persiste la solicitud y rellena request.Number desde RETURNING.
func (r *SupplyRequestRepo) Create(ctx context.Context, request *entity.SupplyRequest) error {
	query := `
		INSERT INTO productSupplyRequests (managerID, warehouseID, storeID, productName, unitsRequested)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING requestNumber`
	err := r.q.QueryRow(ctx, query,
		request.ManagerID, request.WarehouseID, request.StoreID, request.ProductName, request.UnitsRequested,
	).Scan(&request.Number)
	if err != nil {
		return fmt.Errorf("insert supply request: %w", err)
	}
	return nil
}
