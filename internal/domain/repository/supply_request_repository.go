package repository

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// SupplyRequestRepository define el puerto para las solicitudes de
// reabastecimiento. Append-only.
type SupplyRequestRepository interface {
	// Create persiste la solicitud y rellena request.Number.
	Create(ctx context.Context, request *entity.SupplyRequest) error
}
