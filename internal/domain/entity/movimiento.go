package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento financiero.
const (
	MovimientoCuentaCobrar = "cuenta_cobrar" // venta a crédito
	MovimientoCuentaPagar  = "cuenta_pagar"  // compra a crédito
)

// Estados de un movimiento financiero.
const (
	MovimientoPendiente = "pendiente"
	MovimientoParcial   = "parcial"
	MovimientoVencido   = "vencido"
	MovimientoPagado    = "pagado"
)

// MovimientoFinanciero es una cuenta por cobrar o por pagar generada al
// liquidar un documento a crédito. SaldoPendiente baja con cada pago; cuando
// llega a cero el estado pasa a pagado.
type MovimientoFinanciero struct {
	ID               int64
	Tipo             string // cuenta_cobrar | cuenta_pagar
	DocumentoID      int64  // venta_id o compra_id según Tipo
	FechaVencimiento time.Time
	SaldoPendiente   decimal.Decimal
	Estado           string // pendiente | parcial | vencido | pagado
}
