package entity

import "time"

// Operaciones registradas en auditoría por los casos de uso.
const (
	OperacionCheckoutVenta = "CHECKOUT_VENTA"
	OperacionPagoVenta     = "PAGO_VENTA"
	OperacionCierreCompra  = "CIERRE_COMPRA"
	OperacionCrearUsuario  = "CREAR_USUARIO"
)

// RegistroAuditoria es una entrada append-only del rastro de auditoría,
// clavada por usuario y operación.
type RegistroAuditoria struct {
	ID             int64
	FechaOperacion time.Time
	Operacion      string
	UsuarioID      string
	Motivo         string
	DetallesCambio string
}
