package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// MovimientoVista es un movimiento con la contraparte resuelta por join
// (nombre del cliente para cuentas por cobrar, razón social para cuentas por pagar).
type MovimientoVista struct {
	ID               int64
	Tipo             string
	DocumentoID      int64
	Contraparte      string
	FechaVencimiento time.Time
	SaldoPendiente   decimal.Decimal
	Estado           string
}

// MovimientoRepository define el puerto para cuentas por cobrar y por pagar.
type MovimientoRepository interface {
	// Crear asigna el ID desde la secuencia.
	Crear(m *entity.MovimientoFinanciero) error
	// ListarPendientes devuelve movimientos en estado pendiente, vencido o
	// parcial, ordenados por fecha de vencimiento ascendente.
	ListarPendientes() ([]MovimientoVista, error)
	// GetPorDocumentoForUpdate bloquea el movimiento de un documento (SELECT FOR UPDATE).
	GetPorDocumentoForUpdate(tipo string, documentoID int64) (*entity.MovimientoFinanciero, error)
	ActualizarSaldo(id int64, saldo decimal.Decimal, estado string) error
	// SaldoPendienteCliente suma los saldos no liquidados de las cuentas por
	// cobrar del cliente (la base de la validación de límite de crédito).
	SaldoPendienteCliente(clienteID string) (decimal.Decimal, error)
}
