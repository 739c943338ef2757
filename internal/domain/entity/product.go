package entity

import "github.com/shopspring/decimal"

// Product representa un producto en el inventario de una tienda. La clave es
// compuesta (StoreID, Name).
type Product struct {
	StoreID       int64
	Name          string
	NumberOfUnits int
	PricePerUnit  decimal.Decimal
}
