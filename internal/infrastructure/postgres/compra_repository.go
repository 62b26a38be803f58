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

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador de persistencia para compras.
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// CrearCabecera inserta la cabecera abierta y asigna el ID desde la secuencia.
// El número de documento repetido devuelve ErrDuplicate.
func (r *CompraRepo) CrearCabecera(c *entity.Compra) error {
	query := `
		INSERT INTO compras (proveedor_id, numero_documento, tipo_pago, estado, total_neto, total_impuestos, total_bruto, fecha_compra)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING compra_id`
	err := r.q.QueryRow(context.Background(), query,
		c.ProveedorID, c.NumeroDocumento, c.TipoPago, c.Estado, c.TotalNeto, c.TotalImpuestos, c.TotalBruto, c.FechaCompra,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

const compraColumns = `compra_id, proveedor_id, numero_documento, tipo_pago, estado, total_neto, total_impuestos, total_bruto, fecha_compra`

func (r *CompraRepo) getByID(id int64, forUpdate bool) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE compra_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var c entity.Compra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ProveedorID, &c.NumeroDocumento, &c.TipoPago, &c.Estado,
		&c.TotalNeto, &c.TotalImpuestos, &c.TotalBruto, &c.FechaCompra,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

// GetByID obtiene una compra por ID. Devuelve nil si no existe.
func (r *CompraRepo) GetByID(id int64) (*entity.Compra, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate bloquea la fila de la cabecera (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción.
func (r *CompraRepo) GetByIDForUpdate(id int64) (*entity.Compra, error) {
	return r.getByID(id, true)
}

// AgregarDetalle inserta una línea de compra.
func (r *CompraRepo) AgregarDetalle(d *entity.DetalleCompra) error {
	query := `
		INSERT INTO detalle_compras (compra_id, producto_codigo, cantidad, precio_costo, descuento_linea, impuestos_linea)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.CompraID, d.ProductoCodigo, d.Cantidad, d.PrecioCosto, d.DescuentoLinea, d.ImpuestosLinea,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert detalle de compra: %w", err)
	}
	return nil
}

// ActualizarTotales persiste los totales solo si la compra sigue abierta.
// Devuelve false si no afectó filas (cerrada o inexistente).
func (r *CompraRepo) ActualizarTotales(id int64, neto, impuestos, bruto decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE compras SET total_neto = $2, total_impuestos = $3, total_bruto = $4
		 WHERE compra_id = $1 AND estado = 'abierta'`,
		id, neto, impuestos, bruto,
	)
	if err != nil {
		return false, fmt.Errorf("update totales de compra: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ActualizarEstado cambia el estado de la compra.
func (r *CompraRepo) ActualizarEstado(id int64, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE compras SET estado = $2 WHERE compra_id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de compra: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const compraResumenQuery = `
	SELECT c.compra_id, c.fecha_compra, c.proveedor_id, p.razon_social,
	       c.numero_documento, c.tipo_pago, c.estado, c.total_neto, c.total_impuestos, c.total_bruto
	FROM compras c
	JOIN proveedores p ON p.proveedor_id = c.proveedor_id`

func (r *CompraRepo) listarResumen(where string) ([]repository.CompraResumen, error) {
	rows, err := r.q.Query(context.Background(), compraResumenQuery+where)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var out []repository.CompraResumen
	for rows.Next() {
		var c repository.CompraResumen
		if err := rows.Scan(
			&c.CompraID, &c.FechaCompra, &c.ProveedorID, &c.ProveedorNombre,
			&c.NumeroDocumento, &c.TipoPago, &c.Estado, &c.TotalNeto, &c.TotalImpuestos, &c.TotalBruto,
		); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListarAbiertas devuelve las compras en estado abierta, más antigua primero.
func (r *CompraRepo) ListarAbiertas() ([]repository.CompraResumen, error) {
	return r.listarResumen(` WHERE c.estado = 'abierta' ORDER BY c.fecha_compra`)
}

// ListarCerradas devuelve el historial de compras cerradas, más reciente primero.
func (r *CompraRepo) ListarCerradas() ([]repository.CompraResumen, error) {
	return r.listarResumen(` WHERE c.estado = 'cerrada' ORDER BY c.fecha_compra DESC`)
}

// GetDetalles devuelve las líneas de una compra con el nombre del producto.
func (r *CompraRepo) GetDetalles(compraID int64) ([]repository.DetalleCompraLinea, error) {
	query := `
		SELECT d.producto_codigo, p.nombre, d.cantidad, d.precio_costo, d.descuento_linea, d.impuestos_linea
		FROM detalle_compras d
		JOIN productos p ON p.producto_codigo = d.producto_codigo
		WHERE d.compra_id = $1
		ORDER BY d.detalle_id`
	rows, err := r.q.Query(context.Background(), query, compraID)
	if err != nil {
		return nil, fmt.Errorf("get detalles de compra: %w", err)
	}
	defer rows.Close()

	var out []repository.DetalleCompraLinea
	for rows.Next() {
		var l repository.DetalleCompraLinea
		if err := rows.Scan(&l.ProductoCodigo, &l.ProductoNombre, &l.Cantidad, &l.PrecioCosto, &l.DescuentoLinea, &l.ImpuestosLinea); err != nil {
			return nil, fmt.Errorf("scan detalle de compra: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
