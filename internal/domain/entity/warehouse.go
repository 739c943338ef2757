package entity

// Warehouse representa una bodega de la cadena. Datos de referencia
// estáticos.
type Warehouse struct {
	ID        int64
	Area      string
	Latitude  float64
	Longitude float64
}
