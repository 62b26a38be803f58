package postgres

import (
	"context"
	"fmt"

	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.DescuentoRepository = (*DescuentoRepo)(nil)

// DescuentoRepo implementación del puerto DescuentoRepository sobre PostgreSQL.
type DescuentoRepo struct {
	q Querier
}

// NewDescuentoRepository construye el adaptador de persistencia para descuentos.
func NewDescuentoRepository(q Querier) *DescuentoRepo {
	return &DescuentoRepo{q: q}
}

// CrearTasa inserta una tasa en el catálogo y asigna el ID desde la secuencia.
func (r *DescuentoRepo) CrearTasa(d *entity.Descuento) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO descuentos (nombre, tasa_porcentaje) VALUES ($1, $2) RETURNING descuento_id`,
		d.Nombre, d.TasaPorcentaje,
	).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert descuento: %w", err)
	}
	return nil
}

// ListarCatalogo devuelve el catálogo de descuentos.
func (r *DescuentoRepo) ListarCatalogo() ([]*entity.Descuento, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT descuento_id, nombre, tasa_porcentaje FROM descuentos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list descuentos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Descuento
	for rows.Next() {
		var d entity.Descuento
		if err := rows.Scan(&d.ID, &d.Nombre, &d.TasaPorcentaje); err != nil {
			return nil, fmt.Errorf("scan descuento: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// ActualizarTasa modifica nombre y tasa. Devuelve false si el ID no existe.
func (r *DescuentoRepo) ActualizarTasa(d *entity.Descuento) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE descuentos SET nombre = $2, tasa_porcentaje = $3 WHERE descuento_id = $1`,
		d.ID, d.Nombre, d.TasaPorcentaje,
	)
	if err != nil {
		return false, fmt.Errorf("update descuento: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AplicarRegla inserta una regla aplicada y asigna AplicacionID desde la secuencia.
func (r *DescuentoRepo) AplicarRegla(regla *entity.ReglaDescuento) error {
	query := `
		INSERT INTO descuentos_aplicados (descuento_id, tipo_aplicacion, producto_codigo, categoria_id, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING aplicacion_id`
	err := r.q.QueryRow(context.Background(), query,
		regla.DescuentoID, regla.TipoAplicacion, regla.ProductoCodigo, regla.CategoriaID, regla.FechaInicio, regla.FechaFin,
	).Scan(&regla.AplicacionID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("aplicar descuento: %w", err)
	}
	return nil
}

// ListarReglas devuelve las reglas aplicadas con el objetivo resuelto
// (nombre del producto, nombre de la categoría o GLOBAL).
func (r *DescuentoRepo) ListarReglas() ([]repository.ReglaDescuentoVista, error) {
	query := `
		SELECT da.aplicacion_id, d.nombre, d.tasa_porcentaje, da.tipo_aplicacion,
		       COALESCE(p.nombre, c.nombre, 'GLOBAL'), da.fecha_inicio, da.fecha_fin
		FROM descuentos_aplicados da
		JOIN descuentos d ON d.descuento_id = da.descuento_id
		LEFT JOIN productos p ON p.producto_codigo = da.producto_codigo
		LEFT JOIN categorias c ON c.categoria_id = da.categoria_id
		ORDER BY da.fecha_inicio DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reglas de descuento: %w", err)
	}
	defer rows.Close()

	var out []repository.ReglaDescuentoVista
	for rows.Next() {
		var v repository.ReglaDescuentoVista
		if err := rows.Scan(&v.ReglaID, &v.NombreDescuento, &v.Porcentaje, &v.TipoAplicacion, &v.AplicadoA, &v.FechaInicio, &v.FechaFin); err != nil {
			return nil, fmt.Errorf("scan regla de descuento: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// EliminarRegla borra físicamente la regla. Devuelve false si no existía.
func (r *DescuentoRepo) EliminarRegla(aplicacionID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM descuentos_aplicados WHERE aplicacion_id = $1`, aplicacionID)
	if err != nil {
		return false, fmt.Errorf("delete regla de descuento: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
