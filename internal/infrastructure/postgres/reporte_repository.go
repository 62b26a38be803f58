package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

const formatoFechaCorta = "2006-01-02"

// ReporteRepo consultas de agregación de solo lectura para los reportes.
// A diferencia de los repos de escritura, recibe ctx por método: los reportes
// pueden ser pesados y conviene poder cancelarlos.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// MejoresClientes ranking de clientes por monto comprado en ventas liquidadas.
func (r *ReporteRepo) MejoresClientes(ctx context.Context, limit int) ([]dto.MejorClienteDTO, error) {
	query := `
		SELECT v.cliente_id, c.nombre || ' ' || c.apellidos,
		       SUM(v.total_bruto), COUNT(*)
		FROM ventas v
		JOIN clientes c ON c.cliente_id = v.cliente_id
		WHERE v.estado_pago IN ('contado', 'credito')
		GROUP BY v.cliente_id, c.nombre, c.apellidos
		ORDER BY SUM(v.total_bruto) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("mejores clientes: %w", err)
	}
	defer rows.Close()

	var out []dto.MejorClienteDTO
	for rows.Next() {
		var d dto.MejorClienteDTO
		if err := rows.Scan(&d.ClienteID, &d.Nombre, &d.TotalCompra, &d.NumVentas); err != nil {
			return nil, fmt.Errorf("scan mejor cliente: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TopProductos ranking de productos por unidades vendidas en ventas liquidadas.
func (r *ReporteRepo) TopProductos(ctx context.Context, limit int) ([]dto.TopProductoDTO, error) {
	query := `
		SELECT d.producto_codigo, p.nombre,
		       SUM(d.cantidad), SUM(d.cantidad * d.precio_venta)
		FROM detalle_ventas d
		JOIN ventas v ON v.venta_id = d.venta_id
		JOIN productos p ON p.producto_codigo = d.producto_codigo
		WHERE v.estado_pago IN ('contado', 'credito')
		GROUP BY d.producto_codigo, p.nombre
		ORDER BY SUM(d.cantidad) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()

	var out []dto.TopProductoDTO
	for rows.Next() {
		var d dto.TopProductoDTO
		if err := rows.Scan(&d.ProductoCodigo, &d.Nombre, &d.UnidadesVendidas, &d.TotalVendido); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// StockBajo productos activos con stock igual o bajo el mínimo.
func (r *ReporteRepo) StockBajo(ctx context.Context) ([]dto.ProductoStockBajoDTO, error) {
	query := `
		SELECT producto_codigo, nombre, stock_actual, stock_minimo
		FROM productos
		WHERE estado = 'activo' AND stock_actual <= stock_minimo
		ORDER BY stock_actual - stock_minimo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock bajo: %w", err)
	}
	defer rows.Close()

	var out []dto.ProductoStockBajoDTO
	for rows.Next() {
		var d dto.ProductoStockBajoDTO
		if err := rows.Scan(&d.ProductoCodigo, &d.Nombre, &d.StockActual, &d.StockMinimo); err != nil {
			return nil, fmt.Errorf("scan stock bajo: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreditosPorVencer cuentas por pagar sin liquidar cuya fecha límite cae
// dentro de la ventana de alerta.
func (r *ReporteRepo) CreditosPorVencer(ctx context.Context, diasAlerta int) ([]dto.CreditoPorVencerDTO, error) {
	query := `
		SELECT m.movimiento_id, m.documento_id, p.razon_social, m.fecha_vencimiento,
		       (m.fecha_vencimiento::date - CURRENT_DATE), m.saldo_pendiente
		FROM movimientos_financieros m
		JOIN compras c ON c.compra_id = m.documento_id
		JOIN proveedores p ON p.proveedor_id = c.proveedor_id
		WHERE m.tipo_movimiento = 'cuenta_pagar'
		  AND m.estado IN ('pendiente', 'parcial', 'vencido')
		  AND m.fecha_vencimiento::date <= CURRENT_DATE + $1
		ORDER BY m.fecha_vencimiento`
	rows, err := r.q.Query(ctx, query, diasAlerta)
	if err != nil {
		return nil, fmt.Errorf("creditos por vencer: %w", err)
	}
	defer rows.Close()

	var out []dto.CreditoPorVencerDTO
	for rows.Next() {
		var d dto.CreditoPorVencerDTO
		var fechaLimite time.Time
		if err := rows.Scan(&d.MovimientoID, &d.CompraID, &d.Proveedor, &fechaLimite, &d.DiasRestantes, &d.SaldoPendiente); err != nil {
			return nil, fmt.Errorf("scan credito por vencer: %w", err)
		}
		d.FechaLimite = fechaLimite.Format(formatoFechaCorta)
		out = append(out, d)
	}
	return out, rows.Err()
}

// VentasPorCobrar cuentas por cobrar sin liquidar. La fecha límite es el
// vencimiento del movimiento o, si faltara, la fecha de venta más el plazo
// configurado; las que caen dentro de la ventana de alerta se marcan urgentes.
func (r *ReporteRepo) VentasPorCobrar(ctx context.Context, plazoDias, diasAlerta int) ([]dto.VentaPorCobrarDTO, error) {
	query := `
		SELECT m.movimiento_id, m.documento_id, c.nombre || ' ' || c.apellidos,
		       COALESCE(m.fecha_vencimiento, v.fecha_venta + make_interval(days => $1)) AS fecha_limite,
		       (COALESCE(m.fecha_vencimiento, v.fecha_venta + make_interval(days => $1))::date - CURRENT_DATE),
		       m.saldo_pendiente,
		       (COALESCE(m.fecha_vencimiento, v.fecha_venta + make_interval(days => $1))::date - CURRENT_DATE) <= $2
		FROM movimientos_financieros m
		JOIN ventas v ON v.venta_id = m.documento_id
		JOIN clientes c ON c.cliente_id = v.cliente_id
		WHERE m.tipo_movimiento = 'cuenta_cobrar'
		  AND m.estado IN ('pendiente', 'parcial', 'vencido')
		ORDER BY fecha_limite`
	rows, err := r.q.Query(ctx, query, plazoDias, diasAlerta)
	if err != nil {
		return nil, fmt.Errorf("ventas por cobrar: %w", err)
	}
	defer rows.Close()

	var out []dto.VentaPorCobrarDTO
	for rows.Next() {
		var d dto.VentaPorCobrarDTO
		var fechaLimite time.Time
		if err := rows.Scan(&d.MovimientoID, &d.VentaID, &d.Cliente, &fechaLimite, &d.DiasRestantes, &d.SaldoPendiente, &d.Urgente); err != nil {
			return nil, fmt.Errorf("scan venta por cobrar: %w", err)
		}
		d.FechaLimite = fechaLimite.Format(formatoFechaCorta)
		out = append(out, d)
	}
	return out, rows.Err()
}
