package usecase_test

import (
	"context"
	. "github.com/jhoicas/retail-cli/internal/application/usecase"
	"testing"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplyFixture() (*SupplyUseCase, *fakeProductRepo, *fakeSupplyRepo) {
	stores := newFakeStoreRepo(
		&entity.Store{ID: 1, Name: "Centro", ManagerID: 10},
		&entity.Store{ID: 2, Name: "Norte", ManagerID: 11},
	)
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: 100, Area: "Sur"})
	products := newFakeProductRepo(&entity.Product{
		StoreID:       1,
		Name:          "Leche",
		NumberOfUnits: 10,
		PricePerUnit:  decimal.RequireFromString("2.50"),
	})
	supplies := &fakeSupplyRepo{}
	tx := &fakeTxRunner{repos: TxRepos{Products: products, Supplies: supplies}}
	return NewSupplyUseCase(tx, stores, warehouses), products, supplies
}

func TestRequest_IncrementaStockYAudita(t *testing.T) {
	uc, products, supplies := newSupplyFixture()

	request, err := uc.Request(context.Background(), manager(10), RequestInput{
		StoreID:     1,
		ProductName: "Leche",
		WarehouseID: 100,
		Units:       15,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, products.units(1, "Leche"), "la solicitud suma las unidades pedidas al stock")
	require.Len(t, supplies.requests, 1, "debe quedar exactamente una fila de solicitud")
	assert.Equal(t, int64(10), supplies.requests[0].ManagerID)
	assert.Equal(t, int64(100), supplies.requests[0].WarehouseID)
	assert.Equal(t, int64(1), request.Number)
}

func TestRequest_GerenteAjeno(t *testing.T) {
	uc, products, supplies := newSupplyFixture()

	_, err := uc.Request(context.Background(), manager(11), RequestInput{
		StoreID:     1,
		ProductName: "Leche",
		WarehouseID: 100,
		Units:       15,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 10, products.units(1, "Leche"))
	assert.Empty(t, supplies.requests)
}

func TestRequest_ClienteProhibido(t *testing.T) {
	uc, _, supplies := newSupplyFixture()
	customer := &entity.User{ID: 5, Role: entity.RoleCustomer}

	_, err := uc.Request(context.Background(), customer, RequestInput{
		StoreID:     1,
		ProductName: "Leche",
		WarehouseID: 100,
		Units:       15,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, supplies.requests)
}

func TestRequest_BodegaInexistente(t *testing.T) {
	uc, products, supplies := newSupplyFixture()

	_, err := uc.Request(context.Background(), manager(10), RequestInput{
		StoreID:     1,
		ProductName: "Leche",
		WarehouseID: 999,
		Units:       15,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, products.units(1, "Leche"))
	assert.Empty(t, supplies.requests)
}

func TestRequest_CantidadInvalida(t *testing.T) {
	uc, _, supplies := newSupplyFixture()

	for _, units := range []int{0, -5} {
		_, err := uc.Request(context.Background(), manager(10), RequestInput{
			StoreID:     1,
			ProductName: "Leche",
			WarehouseID: 100,
			Units:       units,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", units)
	}
	assert.Empty(t, supplies.requests)
}
