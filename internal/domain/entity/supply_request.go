package entity

// SupplyRequest es la fila de auditoría de una solicitud de reabastecimiento
// a bodega. En esta implementación la solicitud incrementa el stock de
// inmediato (no hay flujo de aprobación).
type SupplyRequest struct {
	Number         int64
	ManagerID      int64
	WarehouseID    int64
	StoreID        int64
	ProductName    string
	UnitsRequested int
}
