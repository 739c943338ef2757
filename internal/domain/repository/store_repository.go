package repository

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store. Las tiendas
// son datos de referencia: solo lectura.
type StoreRepository interface {
	List(ctx context.Context) ([]*entity.Store, error)
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
}
