package entity

// Roles con significado especial en el middleware RBAC.
const (
	RolAdmin     = "admin"
	RolCajero    = "cajero"
	RolBodeguero = "bodeguero"
)

// Rol del sistema. ID generado por secuencia; NombreRol es único.
type Rol struct {
	ID     int64
	Nombre string
}

// Usuario de la aplicación. El ID es el documento de identidad (DPI), no autogenerado.
// ContrasenaHash guarda el hash bcrypt; la contraseña en claro nunca se persiste.
type Usuario struct {
	ID             string
	Nombre         string
	Apellidos      string
	Telefono       string
	Correo         string
	NombreUsuario  string
	ContrasenaHash string
	RolID          int64
}
