package dto

// CrearUsuarioRequest alta de usuario. Contrasena viaja en claro solo en la
// petición; se persiste como hash bcrypt.
type CrearUsuarioRequest struct {
	ID            string `json:"usuario_id"`
	Nombre        string `json:"nombre"`
	Apellidos     string `json:"apellidos"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo_electronico"`
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"contrasena"`
	RolID         int64  `json:"rol_id"`
}

// ActualizarUsuarioRequest actualización de usuario por ID.
// Contrasena vacía conserva la actual.
type ActualizarUsuarioRequest struct {
	Nombre        string `json:"nombre"`
	Apellidos     string `json:"apellidos"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo_electronico"`
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"contrasena"`
	RolID         int64  `json:"rol_id"`
}

// UsuarioResponse usuario en respuestas (nunca incluye la contraseña).
type UsuarioResponse struct {
	ID            string `json:"usuario_id"`
	Nombre        string `json:"nombre"`
	Apellidos     string `json:"apellidos"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo_electronico"`
	NombreUsuario string `json:"nombre_usuario"`
	Rol           string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"contrasena"`
}

// LoginResponse token y datos básicos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
