package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// VentaResumen es la fila de los listados de ventas (abiertas e historial),
// con el nombre del cliente resuelto por join.
type VentaResumen struct {
	VentaID        int64
	FechaVenta     time.Time
	ClienteID      string
	ClienteNombre  string
	EstadoPago     string
	TotalNeto      decimal.Decimal
	TotalImpuestos decimal.Decimal
	TotalBruto     decimal.Decimal
}

// DetalleVentaLinea es una línea de venta con el nombre del producto.
type DetalleVentaLinea struct {
	ProductoCodigo string
	ProductoNombre string
	Cantidad       int64
	PrecioVenta    decimal.Decimal
	DescuentoLinea decimal.Decimal
	ImpuestosLinea decimal.Decimal
}

// VentaRepository define el puerto de persistencia para Venta y sus líneas.
type VentaRepository interface {
	// CrearCabecera inserta la cabecera abierta con totales en cero y asigna el ID secuencial.
	CrearCabecera(v *entity.Venta) error
	GetByID(id int64) (*entity.Venta, error)
	// GetByIDForUpdate bloquea la fila de la cabecera (SELECT FOR UPDATE) dentro de una tx.
	GetByIDForUpdate(id int64) (*entity.Venta, error)
	AgregarDetalle(d *entity.DetalleVenta) error
	// ActualizarTotales persiste neto/impuestos/bruto solo si la venta sigue
	// abierta. Devuelve false si no afectó filas (cerrada o inexistente).
	ActualizarTotales(id int64, neto, impuestos, bruto decimal.Decimal) (bool, error)
	ActualizarEstado(id int64, estado string) error
	ListarAbiertas() ([]VentaResumen, error)
	// ListarLiquidadas devuelve el historial (contado y crédito), más reciente primero.
	ListarLiquidadas() ([]VentaResumen, error)
	GetDetalles(ventaID int64) ([]DetalleVentaLinea, error)
}
