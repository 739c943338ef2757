package repository

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse.
// Datos de referencia: solo lectura.
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
}
