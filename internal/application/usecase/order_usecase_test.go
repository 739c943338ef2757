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

func newOrderFixture(units int) (*OrderUseCase, *fakeProductRepo, *fakeOrderRepo) {
	products := newFakeProductRepo(&entity.Product{
		StoreID:       1,
		Name:          "Leche",
		NumberOfUnits: units,
		PricePerUnit:  decimal.RequireFromString("2.50"),
	})
	orders := &fakeOrderRepo{}
	tx := &fakeTxRunner{repos: TxRepos{Products: products, Orders: orders}}
	return NewOrderUseCase(tx, orders), products, orders
}

func TestPlace_DescuentaStockYCreaPedido(t *testing.T) {
	uc, products, orders := newOrderFixture(10)

	order, err := uc.Place(context.Background(), PlaceInput{
		CustomerID:  7,
		StoreID:     1,
		ProductName: "Leche",
		Units:       4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.Number, "el pedido debe llevar el número generado")
	assert.False(t, order.OrderTime.IsZero(), "el pedido debe llevar la hora generada")
	assert.Equal(t, 6, products.units(1, "Leche"), "el stock debe quedar en unidades previas menos pedidas")
	assert.Len(t, orders.orders, 1, "debe quedar exactamente una fila de pedido")
}

func TestPlace_StockInsuficienteNoEscribe(t *testing.T) {
	uc, products, orders := newOrderFixture(3)

	_, err := uc.Place(context.Background(), PlaceInput{
		CustomerID:  7,
		StoreID:     1,
		ProductName: "Leche",
		Units:       5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, products.units(1, "Leche"), "el stock no debe cambiar en un pedido rechazado")
	assert.Empty(t, orders.orders, "no debe quedar ninguna fila de pedido")
}

func TestPlace_CantidadInvalida(t *testing.T) {
	uc, products, _ := newOrderFixture(3)

	for _, units := range []int{0, -2} {
		_, err := uc.Place(context.Background(), PlaceInput{
			CustomerID:  7,
			StoreID:     1,
			ProductName: "Leche",
			Units:       units,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", units)
	}
	assert.Equal(t, 3, products.units(1, "Leche"))
}

func TestPlace_ProductoInexistente(t *testing.T) {
	uc, _, orders := newOrderFixture(3)

	_, err := uc.Place(context.Background(), PlaceInput{
		CustomerID:  7,
		StoreID:     1,
		ProductName: "Pan",
		Units:       1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, orders.orders)
}

func TestPlace_StockExacto(t *testing.T) {
	uc, products, _ := newOrderFixture(5)

	_, err := uc.Place(context.Background(), PlaceInput{
		CustomerID:  7,
		StoreID:     1,
		ProductName: "Leche",
		Units:       5,
	})
	require.NoError(t, err, "pedir exactamente el stock disponible es válido")
	assert.Equal(t, 0, products.units(1, "Leche"))
}
