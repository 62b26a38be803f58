package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una compra.
const (
	CompraAbierta = "abierta"
	CompraCerrada = "cerrada"
)

// Compra es la cabecera de un documento de compra a proveedor.
// NumeroDocumento es el número de factura del proveedor (único).
type Compra struct {
	ID              int64
	ProveedorID     string
	NumeroDocumento string
	TipoPago        string // contado | credito
	Estado          string // abierta | cerrada
	TotalNeto       decimal.Decimal
	TotalImpuestos  decimal.Decimal
	TotalBruto      decimal.Decimal
	FechaCompra     time.Time
}

// DetalleCompra es una línea de producto dentro de una compra.
type DetalleCompra struct {
	CompraID       int64
	ProductoCodigo string
	Cantidad       int64
	PrecioCosto    decimal.Decimal
	DescuentoLinea decimal.Decimal
	ImpuestosLinea decimal.Decimal
}
