package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
// Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido con timestamp del servidor y rellena
// order.Number y order.OrderTime desde RETURNING.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (customerID, storeID, productName, unitsOrdered, orderTime)
		VALUES ($1, $2, $3, $4, now())
		RETURNING orderNumber, orderTime`
	err := r.q.QueryRow(ctx, query,
		order.CustomerID, order.StoreID, order.ProductName, order.UnitsOrdered,
	).Scan(&order.Number, &order.OrderTime)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListRecentByCustomer devuelve los pedidos más recientes del cliente, del
// más nuevo al más viejo, unidos con el nombre de la tienda.
func (r *OrderRepo) ListRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]repository.CustomerOrder, error) {
	query := `
		SELECT o.orderNumber, o.storeID, s.name, o.productName, o.unitsOrdered, o.orderTime
		FROM orders o
		JOIN store s ON s.storeID = o.storeID
		WHERE o.customerID = $1
		ORDER BY o.orderTime DESC, o.orderNumber DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	defer rows.Close()

	var list []repository.CustomerOrder
	for rows.Next() {
		var o repository.CustomerOrder
		if err := rows.Scan(&o.Number, &o.StoreID, &o.StoreName, &o.ProductName, &o.UnitsOrdered, &o.OrderTime); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
