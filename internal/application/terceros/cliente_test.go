package terceros_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/application/terceros"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
}

func (f *fakeClienteRepo) Crear(c *entity.Cliente) error {
	if _, ok := f.clientes[c.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *c
	f.clientes[c.ID] = &copia
	return nil
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeClienteRepo) Listar() ([]*entity.Cliente, error) { return nil, nil }

func (f *fakeClienteRepo) Actualizar(c *entity.Cliente) (bool, error) {
	if _, ok := f.clientes[c.ID]; !ok {
		return false, nil
	}
	copia := *c
	f.clientes[c.ID] = &copia
	return true, nil
}

func TestCrearCliente_NormalFuerzaLimiteCero(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := terceros.NewClienteUseCase(repo)

	out, err := uc.Crear(context.Background(), dto.CrearClienteRequest{
		ID:            "1234567-8",
		Nombre:        "Ana",
		Tipo:          entity.ClienteNormal,
		LimiteCredito: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.True(t, out.LimiteCredito.IsZero(),
		"un cliente normal no mantiene crédito: el límite se fuerza a cero")
}

func TestCrearCliente_MayoristaConservaLimite(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := terceros.NewClienteUseCase(repo)

	out, err := uc.Crear(context.Background(), dto.CrearClienteRequest{
		ID:            "1234567-8",
		Nombre:        "Distribuidora Sur",
		Tipo:          entity.ClienteMayorista,
		LimiteCredito: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.True(t, out.LimiteCredito.Equal(decimal.NewFromInt(500)))
}

// El cambio de tipo a normal también fuerza el límite a cero: un mayorista
// degradado no puede conservar crédito.
func TestActualizarCliente_NormalFuerzaLimiteCero(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := terceros.NewClienteUseCase(repo)

	_, err := uc.Crear(context.Background(), dto.CrearClienteRequest{
		ID:            "1234567-8",
		Nombre:        "Distribuidora Sur",
		Tipo:          entity.ClienteMayorista,
		LimiteCredito: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Actualizar(context.Background(), "1234567-8", dto.ActualizarClienteRequest{
		Nombre:        "Distribuidora Sur",
		Tipo:          entity.ClienteNormal,
		LimiteCredito: decimal.NewFromInt(500),
	}))

	c, err := uc.Get(context.Background(), "1234567-8")
	require.NoError(t, err)
	assert.True(t, c.LimiteCredito.IsZero(),
		"el límite de un cliente normal se fuerza a cero también al actualizar")
}

func TestCrearCliente_TipoInvalido(t *testing.T) {
	uc := terceros.NewClienteUseCase(newFakeClienteRepo())
	_, err := uc.Crear(context.Background(), dto.CrearClienteRequest{
		ID:     "1234567-8",
		Nombre: "Ana",
		Tipo:   "vip",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearCliente_LimiteNegativo(t *testing.T) {
	uc := terceros.NewClienteUseCase(newFakeClienteRepo())
	_, err := uc.Crear(context.Background(), dto.CrearClienteRequest{
		ID:            "1234567-8",
		Nombre:        "Ana",
		Tipo:          entity.ClienteMayorista,
		LimiteCredito: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearCliente_IDDuplicado(t *testing.T) {
	uc := terceros.NewClienteUseCase(newFakeClienteRepo())
	in := dto.CrearClienteRequest{ID: "1234567-8", Nombre: "Ana", Tipo: entity.ClienteNormal}

	_, err := uc.Crear(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGetCliente_Inexistente(t *testing.T) {
	uc := terceros.NewClienteUseCase(newFakeClienteRepo())
	_, err := uc.Get(context.Background(), "NADIE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
