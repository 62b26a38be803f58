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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Crear persiste un proveedor nuevo. El ID repetido devuelve ErrDuplicate.
func (r *ProveedorRepo) Crear(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (proveedor_id, razon_social, direccion, telefono, correo_electronico, condiciones_pago, plazo_credito_dias, representante)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.RazonSocial, p.Direccion, p.Telefono, p.Correo, p.CondicionesPago, p.PlazoCreditoDias, p.Representante,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `
		SELECT proveedor_id, razon_social, direccion, telefono, correo_electronico, condiciones_pago, plazo_credito_dias, representante
		FROM proveedores WHERE proveedor_id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.RazonSocial, &p.Direccion, &p.Telefono, &p.Correo, &p.CondicionesPago, &p.PlazoCreditoDias, &p.Representante,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Listar devuelve todos los proveedores ordenados por razón social.
func (r *ProveedorRepo) Listar() ([]*entity.Proveedor, error) {
	query := `
		SELECT proveedor_id, razon_social, direccion, telefono, correo_electronico, condiciones_pago, plazo_credito_dias, representante
		FROM proveedores ORDER BY razon_social`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var out []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(
			&p.ID, &p.RazonSocial, &p.Direccion, &p.Telefono, &p.Correo, &p.CondicionesPago, &p.PlazoCreditoDias, &p.Representante,
		); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Actualizar modifica un proveedor. Devuelve false si el ID no existe.
func (r *ProveedorRepo) Actualizar(p *entity.Proveedor) (bool, error) {
	query := `
		UPDATE proveedores
		SET razon_social = $2, direccion = $3, telefono = $4, correo_electronico = $5, condiciones_pago = $6, plazo_credito_dias = $7, representante = $8
		WHERE proveedor_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.RazonSocial, p.Direccion, p.Telefono, p.Correo, p.CondicionesPago, p.PlazoCreditoDias, p.Representante,
	)
	if err != nil {
		return false, fmt.Errorf("update proveedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
