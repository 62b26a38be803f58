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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)
var _ repository.RolRepository = (*RolRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Crear persiste un usuario nuevo con su hash bcrypt. ID o nombre de usuario
// repetidos devuelven ErrDuplicate.
func (r *UsuarioRepo) Crear(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (usuario_id, nombre, apellidos, telefono, correo_electronico, nombre_usuario, contrasena, rol_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellidos, u.Telefono, u.Correo, u.NombreUsuario, u.ContrasenaHash, u.RolID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByNombreUsuario obtiene un usuario (con el nombre de su rol) por nombre
// de usuario. Devuelve nil si no existe.
func (r *UsuarioRepo) GetByNombreUsuario(nombreUsuario string) (*repository.UsuarioConRol, error) {
	query := `
		SELECT u.usuario_id, u.nombre, u.apellidos, u.telefono, u.correo_electronico, u.nombre_usuario, u.contrasena, u.rol_id, r.nombre_rol
		FROM usuarios u
		JOIN roles r ON r.rol_id = u.rol_id
		WHERE u.nombre_usuario = $1`
	var u repository.UsuarioConRol
	err := r.q.QueryRow(context.Background(), query, nombreUsuario).Scan(
		&u.ID, &u.Nombre, &u.Apellidos, &u.Telefono, &u.Correo, &u.NombreUsuario, &u.ContrasenaHash, &u.RolID, &u.NombreRol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Listar devuelve todos los usuarios con el nombre de su rol.
func (r *UsuarioRepo) Listar() ([]repository.UsuarioConRol, error) {
	query := `
		SELECT u.usuario_id, u.nombre, u.apellidos, u.telefono, u.correo_electronico, u.nombre_usuario, u.contrasena, u.rol_id, r.nombre_rol
		FROM usuarios u
		JOIN roles r ON r.rol_id = u.rol_id
		ORDER BY u.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var out []repository.UsuarioConRol
	for rows.Next() {
		var u repository.UsuarioConRol
		if err := rows.Scan(
			&u.ID, &u.Nombre, &u.Apellidos, &u.Telefono, &u.Correo, &u.NombreUsuario, &u.ContrasenaHash, &u.RolID, &u.NombreRol,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Actualizar modifica un usuario. ContrasenaHash vacío conserva el hash actual.
// Devuelve false si el ID no existe.
func (r *UsuarioRepo) Actualizar(u *entity.Usuario) (bool, error) {
	query := `
		UPDATE usuarios
		SET nombre = $2, apellidos = $3, telefono = $4, correo_electronico = $5, nombre_usuario = $6,
		    contrasena = COALESCE(NULLIF($7, ''), contrasena), rol_id = $8
		WHERE usuario_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellidos, u.Telefono, u.Correo, u.NombreUsuario, u.ContrasenaHash, u.RolID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return false, domain.ErrInvalidInput
		}
		return false, fmt.Errorf("update usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// RolRepo implementación del puerto RolRepository sobre PostgreSQL.
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador de persistencia para roles.
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// Crear inserta un rol y asigna el ID desde la secuencia.
func (r *RolRepo) Crear(rol *entity.Rol) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO roles (nombre_rol) VALUES ($1) RETURNING rol_id`,
		rol.Nombre,
	).Scan(&rol.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rol: %w", err)
	}
	return nil
}

// Listar devuelve todos los roles.
func (r *RolRepo) Listar() ([]*entity.Rol, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT rol_id, nombre_rol FROM roles ORDER BY rol_id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		out = append(out, &rol)
	}
	return out, rows.Err()
}
