package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
	"github.com/jcsalazar/punto-venta-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña contra el hash bcrypt, genera el JWT y
// retorna token + datos básicos. Credenciales malas devuelven siempre
// ErrUnauthorized, sin distinguir usuario inexistente de contraseña errada.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.NombreUsuario == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByNombreUsuario(in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.NombreRol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:            usuario.ID,
			Nombre:        usuario.Nombre,
			Apellidos:     usuario.Apellidos,
			Telefono:      usuario.Telefono,
			Correo:        usuario.Correo,
			NombreUsuario: usuario.NombreUsuario,
			Rol:           usuario.NombreRol,
		},
	}, nil
}
