package usuarios

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// UseCase administración de usuarios y roles (solo admin). Las contraseñas
// se persisten como hash bcrypt; el alta queda en auditoría.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
	audRepo     repository.AuditoriaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, rolRepo repository.RolRepository, audRepo repository.AuditoriaRepository) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, rolRepo: rolRepo, audRepo: audRepo}
}

// Crear da de alta un usuario con contraseña hasheada y registra la operación
// en auditoría. El nombre de usuario repetido devuelve ErrDuplicate.
func (uc *UseCase) Crear(ctx context.Context, adminID string, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.ID == "" || in.Nombre == "" || in.NombreUsuario == "" || in.Contrasena == "" || in.RolID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:             in.ID,
		Nombre:         in.Nombre,
		Apellidos:      in.Apellidos,
		Telefono:       in.Telefono,
		Correo:         in.Correo,
		NombreUsuario:  in.NombreUsuario,
		ContrasenaHash: string(hash),
		RolID:          in.RolID,
	}
	if err := uc.usuarioRepo.Crear(u); err != nil {
		return nil, err
	}

	if err := uc.audRepo.Crear(&entity.RegistroAuditoria{
		FechaOperacion: time.Now(),
		Operacion:      entity.OperacionCrearUsuario,
		UsuarioID:      adminID,
		Motivo:         "alta de usuario",
		DetallesCambio: fmt.Sprintf("op=%s usuario=%s rol=%d", uuid.New().String(), u.ID, u.RolID),
	}); err != nil {
		return nil, err
	}

	return &dto.UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Apellidos:     u.Apellidos,
		Telefono:      u.Telefono,
		Correo:        u.Correo,
		NombreUsuario: u.NombreUsuario,
	}, nil
}

// Listar devuelve los usuarios con el nombre de su rol.
func (uc *UseCase) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	filas, err := uc.usuarioRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.UsuarioResponse{
			ID:            f.ID,
			Nombre:        f.Nombre,
			Apellidos:     f.Apellidos,
			Telefono:      f.Telefono,
			Correo:        f.Correo,
			NombreUsuario: f.NombreUsuario,
			Rol:           f.NombreRol,
		})
	}
	return out, nil
}

// Actualizar modifica un usuario. Contraseña vacía conserva la actual.
func (uc *UseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarUsuarioRequest) error {
	if in.Nombre == "" || in.NombreUsuario == "" || in.RolID <= 0 {
		return domain.ErrInvalidInput
	}
	u := &entity.Usuario{
		ID:            id,
		Nombre:        in.Nombre,
		Apellidos:     in.Apellidos,
		Telefono:      in.Telefono,
		Correo:        in.Correo,
		NombreUsuario: in.NombreUsuario,
		RolID:         in.RolID,
	}
	if in.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.ContrasenaHash = string(hash)
	}
	ok, err := uc.usuarioRepo.Actualizar(u)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// CrearRol da de alta un rol. El nombre repetido devuelve ErrDuplicate.
func (uc *UseCase) CrearRol(ctx context.Context, in dto.CrearRolRequest) (*dto.RolResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	r := &entity.Rol{Nombre: in.Nombre}
	if err := uc.rolRepo.Crear(r); err != nil {
		return nil, err
	}
	return &dto.RolResponse{ID: r.ID, Nombre: r.Nombre}, nil
}

// ListarRoles devuelve todos los roles.
func (uc *UseCase) ListarRoles(ctx context.Context) ([]dto.RolResponse, error) {
	filas, err := uc.rolRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(filas))
	for _, r := range filas {
		out = append(out, dto.RolResponse{ID: r.ID, Nombre: r.Nombre})
	}
	return out, nil
}
