package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// CrearCabecera inserta la cabecera abierta y asigna el ID desde la secuencia.
func (r *VentaRepo) CrearCabecera(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (cliente_id, vendedor_id, fecha_venta, estado_pago, total_neto, total_impuestos, total_bruto, tipo_factura)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING venta_id`
	err := r.q.QueryRow(context.Background(), query,
		v.ClienteID, v.VendedorID, v.FechaVenta, v.EstadoPago, v.TotalNeto, v.TotalImpuestos, v.TotalBruto, v.TipoFactura,
	).Scan(&v.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

const ventaColumns = `venta_id, cliente_id, vendedor_id, fecha_venta, estado_pago, total_neto, total_impuestos, total_bruto, tipo_factura`

func (r *VentaRepo) getByID(id int64, forUpdate bool) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE venta_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.VendedorID, &v.FechaVenta, &v.EstadoPago,
		&v.TotalNeto, &v.TotalImpuestos, &v.TotalBruto, &v.TipoFactura,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetByID obtiene una venta por ID. Devuelve nil si no existe.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate bloquea la fila de la cabecera (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción.
func (r *VentaRepo) GetByIDForUpdate(id int64) (*entity.Venta, error) {
	return r.getByID(id, true)
}

// AgregarDetalle inserta una línea de venta.
func (r *VentaRepo) AgregarDetalle(d *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalle_ventas (venta_id, producto_codigo, cantidad, precio_venta, descuento_linea, impuestos_linea)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.VentaID, d.ProductoCodigo, d.Cantidad, d.PrecioVenta, d.DescuentoLinea, d.ImpuestosLinea,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert detalle de venta: %w", err)
	}
	return nil
}

// ActualizarTotales persiste los totales solo si la venta sigue abierta.
// Devuelve false si no afectó filas (cerrada o inexistente).
func (r *VentaRepo) ActualizarTotales(id int64, neto, impuestos, bruto decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET total_neto = $2, total_impuestos = $3, total_bruto = $4
		 WHERE venta_id = $1 AND estado_pago = 'abierta'`,
		id, neto, impuestos, bruto,
	)
	if err != nil {
		return false, fmt.Errorf("update totales de venta: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ActualizarEstado cambia el estado de pago de la venta.
func (r *VentaRepo) ActualizarEstado(id int64, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET estado_pago = $2 WHERE venta_id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const ventaResumenQuery = `
	SELECT v.venta_id, v.fecha_venta, v.cliente_id, c.nombre || ' ' || c.apellidos,
	       v.estado_pago, v.total_neto, v.total_impuestos, v.total_bruto
	FROM ventas v
	JOIN clientes c ON c.cliente_id = v.cliente_id`

func (r *VentaRepo) listarResumen(where string) ([]repository.VentaResumen, error) {
	rows, err := r.q.Query(context.Background(), ventaResumenQuery+where)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var out []repository.VentaResumen
	for rows.Next() {
		var v repository.VentaResumen
		if err := rows.Scan(
			&v.VentaID, &v.FechaVenta, &v.ClienteID, &v.ClienteNombre,
			&v.EstadoPago, &v.TotalNeto, &v.TotalImpuestos, &v.TotalBruto,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListarAbiertas devuelve las ventas en estado abierta, más antigua primero.
func (r *VentaRepo) ListarAbiertas() ([]repository.VentaResumen, error) {
	return r.listarResumen(` WHERE v.estado_pago = 'abierta' ORDER BY v.fecha_venta`)
}

// ListarLiquidadas devuelve el historial (contado y crédito), más reciente primero.
func (r *VentaRepo) ListarLiquidadas() ([]repository.VentaResumen, error) {
	return r.listarResumen(` WHERE v.estado_pago IN ('contado', 'credito') ORDER BY v.fecha_venta DESC`)
}

// GetDetalles devuelve las líneas de una venta con el nombre del producto.
func (r *VentaRepo) GetDetalles(ventaID int64) ([]repository.DetalleVentaLinea, error) {
	query := `
		SELECT d.producto_codigo, p.nombre, d.cantidad, d.precio_venta, d.descuento_linea, d.impuestos_linea
		FROM detalle_ventas d
		JOIN productos p ON p.producto_codigo = d.producto_codigo
		WHERE d.venta_id = $1
		ORDER BY d.detalle_id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get detalles de venta: %w", err)
	}
	defer rows.Close()

	var out []repository.DetalleVentaLinea
	for rows.Next() {
		var l repository.DetalleVentaLinea
		if err := rows.Scan(&l.ProductoCodigo, &l.ProductoNombre, &l.Cantidad, &l.PrecioVenta, &l.DescuentoLinea, &l.ImpuestosLinea); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
