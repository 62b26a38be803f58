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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Crear persiste un cliente nuevo. El ID (NIT/cédula) repetido devuelve ErrDuplicate.
func (r *ClienteRepo) Crear(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (cliente_id, nombre, apellidos, direccion, telefono, correo_electronico, tipo_cliente, limite_credito)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellidos, c.Direccion, c.Telefono, c.Correo, c.Tipo, c.LimiteCredito,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT cliente_id, nombre, apellidos, direccion, telefono, correo_electronico, tipo_cliente, limite_credito
		FROM clientes WHERE cliente_id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Apellidos, &c.Direccion, &c.Telefono, &c.Correo, &c.Tipo, &c.LimiteCredito,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Listar devuelve todos los clientes ordenados por nombre.
func (r *ClienteRepo) Listar() ([]*entity.Cliente, error) {
	query := `
		SELECT cliente_id, nombre, apellidos, direccion, telefono, correo_electronico, tipo_cliente, limite_credito
		FROM clientes ORDER BY nombre, apellidos`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.Nombre, &c.Apellidos, &c.Direccion, &c.Telefono, &c.Correo, &c.Tipo, &c.LimiteCredito,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Actualizar modifica un cliente. Devuelve false si el ID no existe.
func (r *ClienteRepo) Actualizar(c *entity.Cliente) (bool, error) {
	query := `
		UPDATE clientes
		SET nombre = $2, apellidos = $3, direccion = $4, telefono = $5, correo_electronico = $6, tipo_cliente = $7, limite_credito = $8
		WHERE cliente_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellidos, c.Direccion, c.Telefono, c.Correo, c.Tipo, c.LimiteCredito,
	)
	if err != nil {
		return false, fmt.Errorf("update cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
