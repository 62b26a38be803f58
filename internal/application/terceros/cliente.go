package terceros

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// ClienteUseCase casos de uso de clientes.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Crear da de alta un cliente. El ID (NIT/cédula) repetido devuelve ErrDuplicate.
// El límite de crédito solo tiene sentido para mayoristas; para clientes
// normales se fuerza a cero.
func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.ID == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoClienteValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.LimiteCredito.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	c := &entity.Cliente{
		ID:            in.ID,
		Nombre:        in.Nombre,
		Apellidos:     in.Apellidos,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		Correo:        in.Correo,
		Tipo:          in.Tipo,
		LimiteCredito: in.LimiteCredito,
	}
	if c.Tipo == entity.ClienteNormal {
		c.LimiteCredito = decimal.Zero
	}
	if err := uc.clienteRepo.Crear(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Get devuelve un cliente por ID.
func (uc *ClienteUseCase) Get(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// Listar devuelve todos los clientes.
func (uc *ClienteUseCase) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	filas, err := uc.clienteRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(filas))
	for _, c := range filas {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

// Actualizar modifica un cliente existente. Igual que en el alta, el límite
// de crédito de un cliente normal se fuerza a cero.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarClienteRequest) error {
	if in.Nombre == "" || !entity.TipoClienteValido(in.Tipo) || in.LimiteCredito.IsNegative() {
		return domain.ErrInvalidInput
	}
	c := &entity.Cliente{
		ID:            id,
		Nombre:        in.Nombre,
		Apellidos:     in.Apellidos,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		Correo:        in.Correo,
		Tipo:          in.Tipo,
		LimiteCredito: in.LimiteCredito,
	}
	if c.Tipo == entity.ClienteNormal {
		c.LimiteCredito = decimal.Zero
	}
	ok, err := uc.clienteRepo.Actualizar(c)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Apellidos:     c.Apellidos,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		Correo:        c.Correo,
		Tipo:          c.Tipo,
		LimiteCredito: c.LimiteCredito,
	}
}
