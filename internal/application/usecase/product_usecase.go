package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase mantenimiento de inventario por gerentes y administradores.
// Cada cambio exitoso deja exactamente una fila de auditoría en
// productUpdates con el ID del actor.
type ProductUseCase struct {
	txRunner TxRunner
	stores   repository.StoreRepository
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, stores repository.StoreRepository, products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, stores: stores, products: products}
}

// Managed lista los productos de las tiendas administradas por el actor.
// Los administradores no administran tiendas propias, así que para ellos la
// edición entra por el panel de administración, no por aquí.
func (uc *ProductUseCase) Managed(ctx context.Context, actor *entity.User) ([]*entity.Product, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	return uc.products.ListByManager(ctx, actor.ID)
}

// UpdateUnits fija la cantidad disponible de un producto y escribe la fila
// de auditoría, todo en una transacción.
func (uc *ProductUseCase) UpdateUnits(ctx context.Context, actor *entity.User, storeID int64, name string, units int) (*entity.ProductUpdate, error) {
	if units < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyUpdate(ctx, actor, storeID, name, func(repos TxRepos) error {
		return repos.Products.SetUnits(ctx, storeID, name, units)
	})
}

// UpdatePrice fija el precio por unidad de un producto y escribe la fila de
// auditoría, todo en una transacción.
func (uc *ProductUseCase) UpdatePrice(ctx context.Context, actor *entity.User, storeID int64, name string, price decimal.Decimal) (*entity.ProductUpdate, error) {
	if price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyUpdate(ctx, actor, storeID, name, func(repos TxRepos) error {
		return repos.Products.SetPrice(ctx, storeID, name, price)
	})
}

// applyUpdate valida permisos, ejecuta el cambio dentro de la transacción y
// añade la fila de auditoría. El administrador puede tocar cualquier tienda;
// el gerente solo las suyas.
func (uc *ProductUseCase) applyUpdate(ctx context.Context, actor *entity.User, storeID int64, name string, change func(repos TxRepos) error) (*entity.ProductUpdate, error) {
	if err := uc.authorize(ctx, actor, storeID); err != nil {
		return nil, err
	}

	audit := &entity.ProductUpdate{
		ManagerID:   actor.ID,
		StoreID:     storeID,
		ProductName: name,
	}
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, err := repos.Products.GetForUpdate(ctx, storeID, name)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := change(repos); err != nil {
			return err
		}
		return repos.Updates.Create(ctx, audit)
	})
	if err != nil {
		return nil, err
	}
	return audit, nil
}

func (uc *ProductUseCase) authorize(ctx context.Context, actor *entity.User, storeID int64) error {
	if !actor.IsStaff() {
		return domain.ErrForbidden
	}
	if actor.IsAdmin() {
		return nil
	}
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	if store.ManagerID != actor.ID {
		return domain.ErrForbidden
	}
	return nil
}
