package repository

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// ProductUpdateRepository define el puerto para el log de auditoría de
// cambios de producto. Append-only.
type ProductUpdateRepository interface {
	// Create persiste la fila de auditoría y rellena Number y UpdatedOn.
	Create(ctx context.Context, update *entity.ProductUpdate) error
}
