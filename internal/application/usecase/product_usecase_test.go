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

func newProductFixture() (*ProductUseCase, *fakeProductRepo, *fakeUpdateRepo) {
	stores := newFakeStoreRepo(
		&entity.Store{ID: 1, Name: "Centro", ManagerID: 10},
		&entity.Store{ID: 2, Name: "Norte", ManagerID: 11},
	)
	products := newFakeProductRepo(&entity.Product{
		StoreID:       1,
		Name:          "Leche",
		NumberOfUnits: 10,
		PricePerUnit:  decimal.RequireFromString("2.50"),
	})
	updates := &fakeUpdateRepo{}
	tx := &fakeTxRunner{repos: TxRepos{Products: products, Updates: updates}}
	return NewProductUseCase(tx, stores, products), products, updates
}

func manager(id int64) *entity.User {
	return &entity.User{ID: id, Name: "gerente", Role: entity.RoleManager}
}

func TestUpdateUnits_EscribeAuditoria(t *testing.T) {
	uc, products, updates := newProductFixture()

	update, err := uc.UpdateUnits(context.Background(), manager(10), 1, "Leche", 25)
	require.NoError(t, err)

	assert.Equal(t, 25, products.units(1, "Leche"))
	require.Len(t, updates.updates, 1, "cada cambio deja exactamente una fila de auditoría")
	assert.Equal(t, int64(10), updates.updates[0].ManagerID, "la auditoría lleva el ID del actor")
	assert.Equal(t, int64(1), update.Number)
	assert.False(t, update.UpdatedOn.IsZero())
}

func TestUpdatePrice_EscribeAuditoria(t *testing.T) {
	uc, products, updates := newProductFixture()

	_, err := uc.UpdatePrice(context.Background(), manager(10), 1, "Leche", decimal.RequireFromString("3.75"))
	require.NoError(t, err)

	p, err := products.Get(context.Background(), 1, "Leche")
	require.NoError(t, err)
	assert.True(t, p.PricePerUnit.Equal(decimal.RequireFromString("3.75")))
	assert.Len(t, updates.updates, 1)
}

func TestUpdateUnits_GerenteAjeno(t *testing.T) {
	uc, products, updates := newProductFixture()

	_, err := uc.UpdateUnits(context.Background(), manager(11), 1, "Leche", 25)
	require.ErrorIs(t, err, domain.ErrForbidden, "un gerente solo toca sus tiendas")

	assert.Equal(t, 10, products.units(1, "Leche"))
	assert.Empty(t, updates.updates)
}

func TestUpdateUnits_AdminCualquierTienda(t *testing.T) {
	uc, products, updates := newProductFixture()
	admin := &entity.User{ID: 99, Name: "admin", Role: entity.RoleAdmin}

	_, err := uc.UpdateUnits(context.Background(), admin, 1, "Leche", 0)
	require.NoError(t, err, "el administrador puede tocar cualquier tienda")

	assert.Equal(t, 0, products.units(1, "Leche"))
	require.Len(t, updates.updates, 1)
	assert.Equal(t, int64(99), updates.updates[0].ManagerID)
}

func TestUpdateUnits_ClienteProhibido(t *testing.T) {
	uc, _, updates := newProductFixture()
	customer := &entity.User{ID: 5, Role: entity.RoleCustomer}

	_, err := uc.UpdateUnits(context.Background(), customer, 1, "Leche", 25)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, updates.updates)

	_, err = uc.Managed(context.Background(), customer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateUnits_ValoresInvalidos(t *testing.T) {
	uc, _, updates := newProductFixture()

	_, err := uc.UpdateUnits(context.Background(), manager(10), 1, "Leche", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidades negativas se rechazan")

	_, err = uc.UpdatePrice(context.Background(), manager(10), 1, "Leche", decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo se rechaza")

	assert.Empty(t, updates.updates)
}

func TestUpdateUnits_ProductoInexistente(t *testing.T) {
	uc, _, updates := newProductFixture()

	_, err := uc.UpdateUnits(context.Background(), manager(10), 1, "Pan", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, updates.updates)
}
