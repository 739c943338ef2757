package repository

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product. La clave
// es compuesta (storeID, productName).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Get(ctx context.Context, storeID int64, name string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR
	// UPDATE). Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, storeID int64, name string) (*entity.Product, error)
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error)
	// ListByManager lista los productos de todas las tiendas administradas
	// por el gerente dado.
	ListByManager(ctx context.Context, managerID int64) ([]*entity.Product, error)
	SetUnits(ctx context.Context, storeID int64, name string, units int) error
	SetPrice(ctx context.Context, storeID int64, name string, price decimal.Decimal) error
	Delete(ctx context.Context, storeID int64, name string) error
}
