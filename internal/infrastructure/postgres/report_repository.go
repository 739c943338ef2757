package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de gerente
// (popularidad y auditoría recurrente).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// PopularProducts agrupa los pedidos por producto en las tiendas del gerente
// y devuelve los más pedidos, por conteo descendente.
func (r *ReportRepo) PopularProducts(ctx context.Context, managerID int64, limit int) ([]repository.ProductCount, error) {
	const query = `
	SELECT o.storeID, o.productName, COUNT(*) AS order_count
	FROM orders o
	JOIN store s ON s.storeID = o.storeID
	WHERE s.managerID = $1
	GROUP BY o.storeID, o.productName
	ORDER BY order_count DESC, o.storeID, o.productName
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, managerID, limit)
	if err != nil {
		return nil, fmt.Errorf("report.PopularProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductCount
	for rows.Next() {
		var row repository.ProductCount
		if err := rows.Scan(&row.StoreID, &row.ProductName, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("report.PopularProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PopularCustomers agrupa los pedidos por cliente en las tiendas del gerente
// y devuelve los que más han comprado, por conteo descendente.
func (r *ReportRepo) PopularCustomers(ctx context.Context, managerID int64, limit int) ([]repository.CustomerCount, error) {
	const query = `
	SELECT o.customerID, u.name, COUNT(*) AS order_count
	FROM orders o
	JOIN store s ON s.storeID = o.storeID
	JOIN users u ON u.userID  = o.customerID
	WHERE s.managerID = $1
	GROUP BY o.customerID, u.name
	ORDER BY order_count DESC, o.customerID
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, managerID, limit)
	if err != nil {
		return nil, fmt.Errorf("report.PopularCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerCount
	for rows.Next() {
		var row repository.CustomerCount
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("report.PopularCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RecurringUpdates devuelve, para cada tienda del gerente, los grupos de
// auditoría (tienda, producto) más recurrentes, hasta limitPerStore por
// tienda, por conteo descendente.
func (r *ReportRepo) RecurringUpdates(ctx context.Context, managerID int64, limitPerStore int) ([]repository.UpdateGroup, error) {
	const query = `
	SELECT storeID, productName, update_count FROM (
	    SELECT pu.storeID, pu.productName, COUNT(*) AS update_count,
	           ROW_NUMBER() OVER (PARTITION BY pu.storeID ORDER BY COUNT(*) DESC, pu.productName) AS rank
	    FROM productUpdates pu
	    JOIN store s ON s.storeID = pu.storeID
	    WHERE s.managerID = $1
	    GROUP BY pu.storeID, pu.productName
	) ranked
	WHERE rank <= $2
	ORDER BY storeID, update_count DESC, productName`

	rows, err := r.q.Query(ctx, query, managerID, limitPerStore)
	if err != nil {
		return nil, fmt.Errorf("report.RecurringUpdates: %w", err)
	}
	defer rows.Close()

	var results []repository.UpdateGroup
	for rows.Next() {
		var row repository.UpdateGroup
		if err := rows.Scan(&row.StoreID, &row.ProductName, &row.UpdateCount); err != nil {
			return nil, fmt.Errorf("report.RecurringUpdates scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
