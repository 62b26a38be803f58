package terceros

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso de proveedores.
type ProveedorUseCase struct {
	proveedorRepo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(proveedorRepo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedorRepo: proveedorRepo}
}

// Crear da de alta un proveedor. El ID repetido devuelve ErrDuplicate.
func (uc *ProveedorUseCase) Crear(ctx context.Context, in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.ID == "" || in.RazonSocial == "" || in.PlazoCreditoDias < 0 {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{
		ID:               in.ID,
		RazonSocial:      in.RazonSocial,
		Direccion:        in.Direccion,
		Telefono:         in.Telefono,
		Correo:           in.Correo,
		CondicionesPago:  in.CondicionesPago,
		PlazoCreditoDias: in.PlazoCreditoDias,
		Representante:    in.Representante,
	}
	if err := uc.proveedorRepo.Crear(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// Get devuelve un proveedor por ID.
func (uc *ProveedorUseCase) Get(ctx context.Context, id string) (*dto.ProveedorResponse, error) {
	p, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProveedorResponse(p), nil
}

// Listar devuelve todos los proveedores.
func (uc *ProveedorUseCase) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	filas, err := uc.proveedorRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(filas))
	for _, p := range filas {
		out = append(out, *toProveedorResponse(p))
	}
	return out, nil
}

// Actualizar modifica un proveedor existente.
func (uc *ProveedorUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProveedorRequest) error {
	if in.RazonSocial == "" || in.PlazoCreditoDias < 0 {
		return domain.ErrInvalidInput
	}
	ok, err := uc.proveedorRepo.Actualizar(&entity.Proveedor{
		ID:               id,
		RazonSocial:      in.RazonSocial,
		Direccion:        in.Direccion,
		Telefono:         in.Telefono,
		Correo:           in.Correo,
		CondicionesPago:  in.CondicionesPago,
		PlazoCreditoDias: in.PlazoCreditoDias,
		Representante:    in.Representante,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:               p.ID,
		RazonSocial:      p.RazonSocial,
		Direccion:        p.Direccion,
		Telefono:         p.Telefono,
		Correo:           p.Correo,
		CondicionesPago:  p.CondicionesPago,
		PlazoCreditoDias: p.PlazoCreditoDias,
		Representante:    p.Representante,
	}
}
