package entity

import "time"

// ProductUpdate es la fila de auditoría que se escribe cada vez que un
// gerente modifica un producto. Append-only.
type ProductUpdate struct {
	Number      int64
	ManagerID   int64
	StoreID     int64
	ProductName string
	UpdatedOn   time.Time
}
