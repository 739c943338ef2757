package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

// recentOrderLimit cuántos pedidos muestra el historial del cliente.
const recentOrderLimit = 5

// OrderUseCase colocación y consulta de pedidos.
type OrderUseCase struct {
	txRunner TxRunner
	orders   repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orders: orders}
}

// PlaceInput entrada para colocar un pedido.
type PlaceInput struct {
	CustomerID  int64
	StoreID     int64
	ProductName string
	Units       int
}

// Place coloca un pedido en una sola transacción: bloquea la fila del
// producto (SELECT FOR UPDATE), verifica el stock, lo decrementa y escribe
// la fila del pedido. Si cualquier paso falla no queda ninguna escritura
// parcial. Devuelve ErrInsufficientStock si el stock ya no alcanza al
// momento del commit (p. ej. un pedido concurrente se adelantó).
func (uc *OrderUseCase) Place(ctx context.Context, in PlaceInput) (*entity.Order, error) {
	if in.Units <= 0 {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		CustomerID:   in.CustomerID,
		StoreID:      in.StoreID,
		ProductName:  in.ProductName,
		UnitsOrdered: in.Units,
	}
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, err := repos.Products.GetForUpdate(ctx, in.StoreID, in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.NumberOfUnits < in.Units {
			return domain.ErrInsufficientStock
		}
		if err := repos.Products.SetUnits(ctx, in.StoreID, in.ProductName, product.NumberOfUnits-in.Units); err != nil {
			return err
		}
		return repos.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Recent devuelve los cinco pedidos más recientes del cliente, del más
// nuevo al más viejo.
func (uc *OrderUseCase) Recent(ctx context.Context, customerID int64) ([]repository.CustomerOrder, error) {
	return uc.orders.ListRecentByCustomer(ctx, customerID, recentOrderLimit)
}
