package entity

import "github.com/shopspring/decimal"

// Impuesto es una tasa del catálogo de impuestos, asociada a productos vía impuestos_productos.
type Impuesto struct {
	ID             int64
	Nombre         string
	TasaPorcentaje decimal.Decimal
}
