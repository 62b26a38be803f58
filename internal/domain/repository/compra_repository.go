package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// CompraResumen es la fila de los listados de compras, con la razón social del proveedor.
type CompraResumen struct {
	CompraID        int64
	FechaCompra     time.Time
	ProveedorID     string
	ProveedorNombre string
	NumeroDocumento string
	TipoPago        string
	Estado          string
	TotalNeto       decimal.Decimal
	TotalImpuestos  decimal.Decimal
	TotalBruto      decimal.Decimal
}

// DetalleCompraLinea es una línea de compra con el nombre del producto.
type DetalleCompraLinea struct {
	ProductoCodigo string
	ProductoNombre string
	Cantidad       int64
	PrecioCosto    decimal.Decimal
	DescuentoLinea decimal.Decimal
	ImpuestosLinea decimal.Decimal
}

// CompraRepository define el puerto de persistencia para Compra y sus líneas.
type CompraRepository interface {
	// CrearCabecera inserta la cabecera abierta con totales en cero y asigna el ID secuencial.
	CrearCabecera(c *entity.Compra) error
	GetByID(id int64) (*entity.Compra, error)
	GetByIDForUpdate(id int64) (*entity.Compra, error)
	AgregarDetalle(d *entity.DetalleCompra) error
	// ActualizarTotales persiste totales solo si la compra sigue abierta.
	ActualizarTotales(id int64, neto, impuestos, bruto decimal.Decimal) (bool, error)
	ActualizarEstado(id int64, estado string) error
	ListarAbiertas() ([]CompraResumen, error)
	ListarCerradas() ([]CompraResumen, error)
	GetDetalles(compraID int64) ([]DetalleCompraLinea, error)
}
