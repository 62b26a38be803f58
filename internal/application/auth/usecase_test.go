package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcsalazar/punto-venta-api/internal/application/auth"
	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
	pkgjwt "github.com/jcsalazar/punto-venta-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*repository.UsuarioConRol
}

func (f *fakeUsuarioRepo) Crear(*entity.Usuario) error { return nil }

func (f *fakeUsuarioRepo) GetByNombreUsuario(nombreUsuario string) (*repository.UsuarioConRol, error) {
	u, ok := f.usuarios[nombreUsuario]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUsuarioRepo) Listar() ([]repository.UsuarioConRol, error) { return nil, nil }
func (f *fakeUsuarioRepo) Actualizar(*entity.Usuario) (bool, error)    { return false, nil }

func nuevoAuthUC(t *testing.T) (*auth.UseCase, *fakeUsuarioRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUsuarioRepo{usuarios: map[string]*repository.UsuarioConRol{
		"jperez": {
			Usuario: entity.Usuario{
				ID:             "1234567890101",
				Nombre:         "Juan",
				NombreUsuario:  "jperez",
				ContrasenaHash: string(hash),
			},
			NombreRol: "cajero",
		},
	}}
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "punto-venta-test",
	})
	return uc, repo
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "jperez",
		Contrasena:    "secreta123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, nombre, rol, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1234567890101", userID)
	assert.Equal(t, "Juan", nombre)
	assert.Equal(t, "cajero", rol, "el token debe llevar el rol para el middleware RBAC")
}

func TestLogin_ContrasenaErrada(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "jperez",
		Contrasena:    "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente y contraseña errada devuelven el mismo error, para no
// filtrar qué usuarios existen.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "nadie",
		Contrasena:    "loquesea",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
