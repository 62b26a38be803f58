package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una venta. "abierta" acepta líneas; los otros dos son terminales.
const (
	VentaAbierta = "abierta"
	VentaContado = "contado"
	VentaCredito = "credito"
)

// Tipos de pago aceptados en el checkout.
const (
	PagoContado = "contado"
	PagoCredito = "credito"
)

// TipoPagoValido valida el tipo de pago recibido en la frontera HTTP.
func TipoPagoValido(tipo string) bool {
	return tipo == PagoContado || tipo == PagoCredito
}

// Venta es la cabecera de un documento de venta. Se crea abierta con totales
// en cero; las líneas se acumulan y el checkout la liquida (contado o crédito).
type Venta struct {
	ID             int64
	ClienteID      string
	VendedorID     string
	FechaVenta     time.Time
	EstadoPago     string // abierta | contado | credito
	TotalNeto      decimal.Decimal
	TotalImpuestos decimal.Decimal
	TotalBruto     decimal.Decimal
	TipoFactura    string
}

// DetalleVenta es una línea de producto dentro de una venta.
type DetalleVenta struct {
	VentaID        int64
	ProductoCodigo string
	Cantidad       int64
	PrecioVenta    decimal.Decimal
	DescuentoLinea decimal.Decimal
	ImpuestosLinea decimal.Decimal
}
