package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Crear persiste un producto nuevo con el stock que traiga la entidad (cero en
// el alta normal) y, si trae tasa, la asociación en impuestos_productos.
func (r *ProductoRepo) Crear(p *entity.Producto) error {
	query := `
		INSERT INTO productos (producto_codigo, nombre, marca, descripcion, precio_venta, precio_costo, unidad_medida, stock_actual, stock_minimo, categoria_id, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.Codigo, p.Nombre, p.Marca, p.Descripcion, p.PrecioVenta, p.PrecioCosto,
		p.UnidadMedida, p.StockActual, p.StockMinimo, p.CategoriaID, p.Estado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	if p.ImpuestoID != nil {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO impuestos_productos (producto_codigo, impuesto_id) VALUES ($1, $2)`,
			p.Codigo, *p.ImpuestoID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert impuesto de producto: %w", err)
		}
	}
	return nil
}

// GetByCodigo obtiene un producto por su código. Devuelve nil si no existe.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `
		SELECT p.producto_codigo, p.nombre, p.marca, p.descripcion, p.precio_venta, p.precio_costo,
		       p.unidad_medida, p.stock_actual, p.stock_minimo, p.categoria_id, p.estado, ip.impuesto_id
		FROM productos p
		LEFT JOIN impuestos_productos ip ON ip.producto_codigo = p.producto_codigo
		WHERE p.producto_codigo = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&p.Codigo, &p.Nombre, &p.Marca, &p.Descripcion, &p.PrecioVenta, &p.PrecioCosto,
		&p.UnidadMedida, &p.StockActual, &p.StockMinimo, &p.CategoriaID, &p.Estado, &p.ImpuestoID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Listar devuelve el catálogo con nombre de categoría y tasa asociada.
func (r *ProductoRepo) Listar() ([]repository.ProductoVista, error) {
	query := `
		SELECT p.producto_codigo, p.nombre, p.marca, p.descripcion, p.precio_venta, p.precio_costo,
		       p.unidad_medida, p.stock_actual, p.stock_minimo, p.categoria_id, p.estado,
		       c.nombre, ip.impuesto_id, i.nombre, i.tasa_porcentaje
		FROM productos p
		JOIN categorias c ON c.categoria_id = p.categoria_id
		LEFT JOIN impuestos_productos ip ON ip.producto_codigo = p.producto_codigo
		LEFT JOIN impuestos i ON i.impuesto_id = ip.impuesto_id
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductoVista
	for rows.Next() {
		var v repository.ProductoVista
		if err := rows.Scan(
			&v.Codigo, &v.Nombre, &v.Marca, &v.Descripcion, &v.PrecioVenta, &v.PrecioCosto,
			&v.UnidadMedida, &v.StockActual, &v.StockMinimo, &v.CategoriaID, &v.Estado,
			&v.CategoriaNombre, &v.ImpuestoID, &v.ImpuestoNombre, &v.TasaImpuesto,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Actualizar modifica el catálogo sin tocar el stock y reemplaza la asociación
// de impuesto. Devuelve false si el código no existe.
func (r *ProductoRepo) Actualizar(p *entity.Producto) (bool, error) {
	query := `
		UPDATE productos
		SET nombre = $2, marca = $3, descripcion = $4, precio_venta = $5, precio_costo = $6,
		    unidad_medida = $7, stock_minimo = $8, categoria_id = $9, estado = $10
		WHERE producto_codigo = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.Codigo, p.Nombre, p.Marca, p.Descripcion, p.PrecioVenta, p.PrecioCosto,
		p.UnidadMedida, p.StockMinimo, p.CategoriaID, p.Estado,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrInvalidInput
		}
		return false, fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM impuestos_productos WHERE producto_codigo = $1`, p.Codigo,
	); err != nil {
		return false, fmt.Errorf("delete impuesto de producto: %w", err)
	}
	if p.ImpuestoID != nil {
		if _, err := r.q.Exec(context.Background(),
			`INSERT INTO impuestos_productos (producto_codigo, impuesto_id) VALUES ($1, $2)`,
			p.Codigo, *p.ImpuestoID,
		); err != nil {
			if isForeignKeyViolation(err) {
				return false, domain.ErrInvalidInput
			}
			return false, fmt.Errorf("insert impuesto de producto: %w", err)
		}
	}
	return true, nil
}

// Buscar busca productos activos por código o nombre (ILIKE).
func (r *ProductoRepo) Buscar(termino string, limit int) ([]*entity.Producto, error) {
	query := `
		SELECT producto_codigo, nombre, marca, descripcion, precio_venta, precio_costo,
		       unidad_medida, stock_actual, stock_minimo, categoria_id, estado
		FROM productos
		WHERE estado = 'activo' AND (producto_codigo ILIKE $1 OR nombre ILIKE $1)
		ORDER BY nombre
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, "%"+termino+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.Codigo, &p.Nombre, &p.Marca, &p.Descripcion, &p.PrecioVenta, &p.PrecioCosto,
			&p.UnidadMedida, &p.StockActual, &p.StockMinimo, &p.CategoriaID, &p.Estado,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// DescontarStock ejecuta el decremento condicional: solo muta la fila si el
// stock alcanza. Devuelve false si no afectó filas (sin stock o código inexistente).
func (r *ProductoRepo) DescontarStock(codigo string, cantidad int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = stock_actual - $2
		 WHERE producto_codigo = $1 AND stock_actual >= $2`,
		codigo, cantidad,
	)
	if err != nil {
		return false, fmt.Errorf("descontar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AumentarStock incrementa el stock (recepción de compras o ajuste positivo).
func (r *ProductoRepo) AumentarStock(codigo string, cantidad int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = stock_actual + $2 WHERE producto_codigo = $1`,
		codigo, cantidad,
	)
	if err != nil {
		return fmt.Errorf("aumentar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
