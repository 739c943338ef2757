package repository

import "context"

// ProductCount es una fila del reporte de productos populares: cuántos
// pedidos ha recibido cada producto en las tiendas del gerente.
type ProductCount struct {
	StoreID     int64
	ProductName string
	OrderCount  int64
}

// CustomerCount es una fila del reporte de clientes populares: cuántos
// pedidos ha colocado cada cliente en las tiendas del gerente.
type CustomerCount struct {
	CustomerID   int64
	CustomerName string
	OrderCount   int64
}

// UpdateGroup es una fila del reporte de actualizaciones recurrentes:
// cuántas veces se ha auditado el mismo producto de la misma tienda.
type UpdateGroup struct {
	StoreID     int64
	ProductName string
	UpdateCount int64
}

// ReportRepository agrupa las consultas de solo lectura para los reportes de
// gerente (top-5 por conteo descendente).
type ReportRepository interface {
	PopularProducts(ctx context.Context, managerID int64, limit int) ([]ProductCount, error)
	PopularCustomers(ctx context.Context, managerID int64, limit int) ([]CustomerCount, error)
	// RecurringUpdates devuelve, para las tiendas del gerente, los grupos de
	// auditoría más recurrentes (hasta limit por tienda).
	RecurringUpdates(ctx context.Context, managerID int64, limitPerStore int) ([]UpdateGroup, error)
}
