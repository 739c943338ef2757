package entity

import "time"

// Store representa una tienda de la cadena. Datos de referencia estáticos:
// este cliente nunca los muta.
type Store struct {
	ID              int64
	Name            string
	Latitude        float64
	Longitude       float64
	ManagerID       int64
	DateEstablished time.Time
}
