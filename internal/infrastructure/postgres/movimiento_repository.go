package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL
// (cuentas por cobrar y por pagar).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos financieros.
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Crear inserta un movimiento y asigna el ID desde la secuencia.
func (r *MovimientoRepo) Crear(m *entity.MovimientoFinanciero) error {
	query := `
		INSERT INTO movimientos_financieros (tipo_movimiento, documento_id, fecha_vencimiento, saldo_pendiente, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING movimiento_id`
	err := r.q.QueryRow(context.Background(), query,
		m.Tipo, m.DocumentoID, m.FechaVencimiento, m.SaldoPendiente, m.Estado,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListarPendientes devuelve los movimientos sin liquidar con la contraparte
// resuelta (cliente para cuentas por cobrar, proveedor para cuentas por pagar),
// ordenados por fecha de vencimiento.
func (r *MovimientoRepo) ListarPendientes() ([]repository.MovimientoVista, error) {
	query := `
		SELECT m.movimiento_id, m.tipo_movimiento, m.documento_id,
		       CASE m.tipo_movimiento
		            WHEN 'cuenta_cobrar' THEN c.nombre || ' ' || c.apellidos
		            ELSE pr.razon_social
		       END,
		       m.fecha_vencimiento, m.saldo_pendiente, m.estado
		FROM movimientos_financieros m
		LEFT JOIN ventas v ON m.tipo_movimiento = 'cuenta_cobrar' AND v.venta_id = m.documento_id
		LEFT JOIN clientes c ON c.cliente_id = v.cliente_id
		LEFT JOIN compras co ON m.tipo_movimiento = 'cuenta_pagar' AND co.compra_id = m.documento_id
		LEFT JOIN proveedores pr ON pr.proveedor_id = co.proveedor_id
		WHERE m.estado IN ('pendiente', 'parcial', 'vencido')
		ORDER BY m.fecha_vencimiento`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var out []repository.MovimientoVista
	for rows.Next() {
		var v repository.MovimientoVista
		if err := rows.Scan(&v.ID, &v.Tipo, &v.DocumentoID, &v.Contraparte, &v.FechaVencimiento, &v.SaldoPendiente, &v.Estado); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetPorDocumentoForUpdate bloquea el movimiento de un documento (SELECT FOR UPDATE).
// Devuelve nil si el documento no tiene movimiento de ese tipo.
func (r *MovimientoRepo) GetPorDocumentoForUpdate(tipo string, documentoID int64) (*entity.MovimientoFinanciero, error) {
	query := `
		SELECT movimiento_id, tipo_movimiento, documento_id, fecha_vencimiento, saldo_pendiente, estado
		FROM movimientos_financieros
		WHERE tipo_movimiento = $1 AND documento_id = $2
		FOR UPDATE`
	var m entity.MovimientoFinanciero
	err := r.q.QueryRow(context.Background(), query, tipo, documentoID).Scan(
		&m.ID, &m.Tipo, &m.DocumentoID, &m.FechaVencimiento, &m.SaldoPendiente, &m.Estado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ActualizarSaldo persiste el saldo y estado resultantes de un abono.
func (r *MovimientoRepo) ActualizarSaldo(id int64, saldo decimal.Decimal, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movimientos_financieros SET saldo_pendiente = $2, estado = $3 WHERE movimiento_id = $1`,
		id, saldo, estado,
	)
	if err != nil {
		return fmt.Errorf("update saldo de movimiento: %w", err)
	}
	return nil
}

// SaldoPendienteCliente suma los saldos sin liquidar de las cuentas por cobrar
// del cliente. Es la base de la validación de límite de crédito en el checkout.
func (r *MovimientoRepo) SaldoPendienteCliente(clienteID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(m.saldo_pendiente), 0)
		FROM movimientos_financieros m
		JOIN ventas v ON v.venta_id = m.documento_id
		WHERE m.tipo_movimiento = 'cuenta_cobrar'
		  AND m.estado IN ('pendiente', 'parcial', 'vencido')
		  AND v.cliente_id = $1`
	var saldo decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, clienteID).Scan(&saldo); err != nil {
		return decimal.Zero, fmt.Errorf("saldo pendiente de cliente: %w", err)
	}
	return saldo, nil
}
