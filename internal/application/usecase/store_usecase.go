package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/geo"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

// StoreUseCase consultas de tiendas e inventario visibles para cualquier
// usuario autenticado.
type StoreUseCase struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.StoreRepository, products repository.ProductRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, products: products}
}

// Nearby devuelve las tiendas a menos de 30 unidades (distancia euclidiana
// plana, estricta) de las coordenadas dadas.
func (uc *StoreUseCase) Nearby(ctx context.Context, latitude, longitude float64) ([]*entity.Store, error) {
	all, err := uc.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	var nearby []*entity.Store
	for _, s := range all {
		if geo.Nearby(latitude, longitude, s.Latitude, s.Longitude) {
			nearby = append(nearby, s)
		}
	}
	return nearby, nil
}

// KnownIDs devuelve el conjunto de IDs de tienda existentes, para los ciclos
// de validación que comparan contra un conjunto ya consultado.
func (uc *StoreUseCase) KnownIDs(ctx context.Context) (map[int64]bool, error) {
	all, err := uc.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[int64]bool, len(all))
	for _, s := range all {
		ids[s.ID] = true
	}
	return ids, nil
}

// Products lista el inventario de una tienda. Devuelve ErrNotFound si la
// tienda no existe.
func (uc *StoreUseCase) Products(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return uc.products.ListByStore(ctx, storeID)
}
