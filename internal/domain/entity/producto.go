package entity

import "github.com/shopspring/decimal"

// Estados de producto.
const (
	ProductoActivo   = "activo"
	ProductoInactivo = "inactivo"
)

// Producto representa un producto del catálogo. El código es la clave natural.
// StockActual solo se muta por recepción de compras y checkout de ventas
// (o por el ajuste manual de bodega); nunca por el CRUD del catálogo.
type Producto struct {
	Codigo       string
	Nombre       string
	Marca        string
	Descripcion  string
	PrecioVenta  decimal.Decimal
	PrecioCosto  decimal.Decimal
	UnidadMedida string
	StockActual  int64 // entero >= 0, garantizado por el decremento condicional
	StockMinimo  int64
	CategoriaID  int64
	ImpuestoID   *int64 // tasa asociada vía impuestos_productos (N:M, una por producto en la práctica)
	Estado       string // activo | inactivo
}
