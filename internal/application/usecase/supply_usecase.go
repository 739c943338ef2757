package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

// SupplyUseCase solicitudes de reabastecimiento a bodega. No hay flujo de
// aprobación: la solicitud incrementa el stock de inmediato y deja la fila
// de auditoría, en una sola transacción.
type SupplyUseCase struct {
	txRunner   TxRunner
	stores     repository.StoreRepository
	warehouses repository.WarehouseRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(txRunner TxRunner, stores repository.StoreRepository, warehouses repository.WarehouseRepository) *SupplyUseCase {
	return &SupplyUseCase{txRunner: txRunner, stores: stores, warehouses: warehouses}
}

// RequestInput entrada para una solicitud de reabastecimiento.
type RequestInput struct {
	StoreID     int64
	ProductName string
	WarehouseID int64
	Units       int
}

// Warehouses lista las bodegas disponibles.
func (uc *SupplyUseCase) Warehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	return uc.warehouses.List(ctx)
}

// Request registra la solicitud: valida actor, tienda y bodega, y en una
// transacción incrementa las unidades del producto y escribe la fila en
// productSupplyRequests.
func (uc *SupplyUseCase) Request(ctx context.Context, actor *entity.User, in RequestInput) (*entity.SupplyRequest, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	if in.Units <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !actor.IsAdmin() {
		store, err := uc.stores.GetByID(ctx, in.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound
		}
		if store.ManagerID != actor.ID {
			return nil, domain.ErrForbidden
		}
	}
	warehouse, err := uc.warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	request := &entity.SupplyRequest{
		ManagerID:      actor.ID,
		WarehouseID:    in.WarehouseID,
		StoreID:        in.StoreID,
		ProductName:    in.ProductName,
		UnitsRequested: in.Units,
	}
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, err := repos.Products.GetForUpdate(ctx, in.StoreID, in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := repos.Products.SetUnits(ctx, in.StoreID, in.ProductName, product.NumberOfUnits+in.Units); err != nil {
			return err
		}
		return repos.Supplies.Create(ctx, request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}
