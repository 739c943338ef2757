package repository

import (
	"context"
	"time"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// CustomerOrder es una fila del historial de pedidos de un cliente, ya unida
// con el nombre de la tienda.
type CustomerOrder struct {
	Number       int64
	StoreID      int64
	StoreName    string
	ProductName  string
	UnitsOrdered int
	OrderTime    time.Time
}

// OrderRepository define el puerto de persistencia para Order. Append-only.
type OrderRepository interface {
	// Create persiste el pedido y rellena order.Number y order.OrderTime
	// con los valores generados (INSERT ... RETURNING).
	Create(ctx context.Context, order *entity.Order) error
	// ListRecentByCustomer devuelve los pedidos más recientes del cliente,
	// del más nuevo al más viejo.
	ListRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]CustomerOrder, error)
}
