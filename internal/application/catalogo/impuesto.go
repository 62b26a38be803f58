package catalogo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// ImpuestoUseCase catálogo de tasas de impuesto y su asociación a productos.
type ImpuestoUseCase struct {
	impuestoRepo repository.ImpuestoRepository
	productoRepo repository.ProductoRepository
}

// NewImpuestoUseCase construye el caso de uso.
func NewImpuestoUseCase(impuestoRepo repository.ImpuestoRepository, productoRepo repository.ProductoRepository) *ImpuestoUseCase {
	return &ImpuestoUseCase{impuestoRepo: impuestoRepo, productoRepo: productoRepo}
}

func tasaValida(t decimal.Decimal) bool {
	return !t.IsNegative() && t.LessThanOrEqual(decimal.NewFromInt(100))
}

// Crear da de alta una tasa en el catálogo de impuestos.
func (uc *ImpuestoUseCase) Crear(ctx context.Context, in dto.TasaRequest) (*dto.TasaResponse, error) {
	if in.Nombre == "" || !tasaValida(in.TasaPorcentaje) {
		return nil, domain.ErrInvalidInput
	}
	i := &entity.Impuesto{Nombre: in.Nombre, TasaPorcentaje: in.TasaPorcentaje}
	if err := uc.impuestoRepo.Crear(i); err != nil {
		return nil, err
	}
	return &dto.TasaResponse{ID: i.ID, Nombre: i.Nombre, Porcentaje: i.TasaPorcentaje}, nil
}

// Listar devuelve el catálogo de impuestos.
func (uc *ImpuestoUseCase) Listar(ctx context.Context) ([]dto.TasaResponse, error) {
	filas, err := uc.impuestoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TasaResponse, 0, len(filas))
	for _, i := range filas {
		out = append(out, dto.TasaResponse{ID: i.ID, Nombre: i.Nombre, Porcentaje: i.TasaPorcentaje})
	}
	return out, nil
}

// Actualizar modifica nombre y tasa de un impuesto.
func (uc *ImpuestoUseCase) Actualizar(ctx context.Context, id int64, in dto.TasaRequest) error {
	if in.Nombre == "" || !tasaValida(in.TasaPorcentaje) {
		return domain.ErrInvalidInput
	}
	ok, err := uc.impuestoRepo.Actualizar(&entity.Impuesto{ID: id, Nombre: in.Nombre, TasaPorcentaje: in.TasaPorcentaje})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ImpuestosDeProducto devuelve las tasas aplicadas a un producto.
func (uc *ImpuestoUseCase) ImpuestosDeProducto(ctx context.Context, codigo string) ([]dto.ImpuestoProductoResponse, error) {
	p, err := uc.productoRepo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	filas, err := uc.impuestoRepo.ImpuestosDeProducto(codigo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImpuestoProductoResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.ImpuestoProductoResponse{
			ProductoCodigo: f.ProductoCodigo,
			Nombre:         f.Nombre,
			TasaPorcentaje: f.TasaPorcentaje,
		})
	}
	return out, nil
}

// Asociar aplica una tasa del catálogo a un producto, reemplazando la asociación previa.
func (uc *ImpuestoUseCase) Asociar(ctx context.Context, in dto.AsociarImpuestoRequest) error {
	if in.ProductoCodigo == "" || in.ImpuestoID <= 0 {
		return domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByCodigo(in.ProductoCodigo)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.impuestoRepo.ReemplazarAsociacion(in.ProductoCodigo, in.ImpuestoID)
}
