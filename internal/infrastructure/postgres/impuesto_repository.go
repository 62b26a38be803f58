package postgres

import (
	"context"
	"fmt"

	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.ImpuestoRepository = (*ImpuestoRepo)(nil)

// ImpuestoRepo implementación del puerto ImpuestoRepository sobre PostgreSQL.
type ImpuestoRepo struct {
	q Querier
}

// NewImpuestoRepository construye el adaptador de persistencia para impuestos.
func NewImpuestoRepository(q Querier) *ImpuestoRepo {
	return &ImpuestoRepo{q: q}
}

// Crear inserta una tasa y asigna el ID desde la secuencia.
func (r *ImpuestoRepo) Crear(i *entity.Impuesto) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO impuestos (nombre, tasa_porcentaje) VALUES ($1, $2) RETURNING impuesto_id`,
		i.Nombre, i.TasaPorcentaje,
	).Scan(&i.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert impuesto: %w", err)
	}
	return nil
}

// Listar devuelve el catálogo de impuestos.
func (r *ImpuestoRepo) Listar() ([]*entity.Impuesto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT impuesto_id, nombre, tasa_porcentaje FROM impuestos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list impuestos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Impuesto
	for rows.Next() {
		var i entity.Impuesto
		if err := rows.Scan(&i.ID, &i.Nombre, &i.TasaPorcentaje); err != nil {
			return nil, fmt.Errorf("scan impuesto: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

// Actualizar modifica nombre y tasa. Devuelve false si el ID no existe.
func (r *ImpuestoRepo) Actualizar(i *entity.Impuesto) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE impuestos SET nombre = $2, tasa_porcentaje = $3 WHERE impuesto_id = $1`,
		i.ID, i.Nombre, i.TasaPorcentaje,
	)
	if err != nil {
		return false, fmt.Errorf("update impuesto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ImpuestosDeProducto devuelve las tasas aplicadas a un producto.
func (r *ImpuestoRepo) ImpuestosDeProducto(codigo string) ([]repository.ImpuestoProducto, error) {
	query := `
		SELECT ip.producto_codigo, i.nombre, i.tasa_porcentaje
		FROM impuestos_productos ip
		JOIN impuestos i ON i.impuesto_id = ip.impuesto_id
		WHERE ip.producto_codigo = $1`
	rows, err := r.q.Query(context.Background(), query, codigo)
	if err != nil {
		return nil, fmt.Errorf("impuestos de producto: %w", err)
	}
	defer rows.Close()

	var out []repository.ImpuestoProducto
	for rows.Next() {
		var v repository.ImpuestoProducto
		if err := rows.Scan(&v.ProductoCodigo, &v.Nombre, &v.TasaPorcentaje); err != nil {
			return nil, fmt.Errorf("scan impuesto de producto: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AsociarProducto inserta la asociación producto-impuesto.
func (r *ImpuestoRepo) AsociarProducto(codigo string, impuestoID int64) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO impuestos_productos (producto_codigo, impuesto_id) VALUES ($1, $2)`,
		codigo, impuestoID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("asociar impuesto: %w", err)
	}
	return nil
}

// ReemplazarAsociacion elimina la asociación previa del producto e inserta la nueva.
func (r *ImpuestoRepo) ReemplazarAsociacion(codigo string, impuestoID int64) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM impuestos_productos WHERE producto_codigo = $1`, codigo,
	); err != nil {
		return fmt.Errorf("delete impuesto de producto: %w", err)
	}
	return r.AsociarProducto(codigo, impuestoID)
}
