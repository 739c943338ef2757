package entity

import "time"

// Order representa un pedido de un cliente. Append-only: se crea al colocar
// el pedido y nunca se modifica.
type Order struct {
	Number       int64
	CustomerID   int64
	StoreID      int64
	ProductName  string
	UnitsOrdered int
	OrderTime    time.Time
}
