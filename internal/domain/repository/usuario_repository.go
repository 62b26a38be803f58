package repository

import "github.com/jcsalazar/punto-venta-api/internal/domain/entity"

// UsuarioConRol es un usuario con el nombre de su rol resuelto por join.
type UsuarioConRol struct {
	entity.Usuario
	NombreRol string
}

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Crear(u *entity.Usuario) error
	GetByNombreUsuario(nombreUsuario string) (*UsuarioConRol, error)
	Listar() ([]UsuarioConRol, error)
	Actualizar(u *entity.Usuario) (bool, error)
}

// RolRepository define el puerto de persistencia para Rol.
type RolRepository interface {
	// Crear asigna el ID desde la secuencia.
	Crear(r *entity.Rol) error
	Listar() ([]*entity.Rol, error)
}
