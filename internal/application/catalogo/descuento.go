package catalogo

import (
	"context"
	"time"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

const formatoFechaCorta = "2006-01-02"

// DescuentoUseCase catálogo de descuentos y reglas aplicadas
// (por producto, por categoría o globales).
type DescuentoUseCase struct {
	descuentoRepo repository.DescuentoRepository
}

// NewDescuentoUseCase construye el caso de uso.
func NewDescuentoUseCase(descuentoRepo repository.DescuentoRepository) *DescuentoUseCase {
	return &DescuentoUseCase{descuentoRepo: descuentoRepo}
}

// CrearTasa da de alta una tasa en el catálogo de descuentos.
func (uc *DescuentoUseCase) CrearTasa(ctx context.Context, in dto.TasaRequest) (*dto.TasaResponse, error) {
	if in.Nombre == "" || !tasaValida(in.TasaPorcentaje) {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Descuento{Nombre: in.Nombre, TasaPorcentaje: in.TasaPorcentaje}
	if err := uc.descuentoRepo.CrearTasa(d); err != nil {
		return nil, err
	}
	return &dto.TasaResponse{ID: d.ID, Nombre: d.Nombre, Porcentaje: d.TasaPorcentaje}, nil
}

// ListarCatalogo devuelve el catálogo de descuentos.
func (uc *DescuentoUseCase) ListarCatalogo(ctx context.Context) ([]dto.TasaResponse, error) {
	filas, err := uc.descuentoRepo.ListarCatalogo()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TasaResponse, 0, len(filas))
	for _, d := range filas {
		out = append(out, dto.TasaResponse{ID: d.ID, Nombre: d.Nombre, Porcentaje: d.TasaPorcentaje})
	}
	return out, nil
}

// ActualizarTasa modifica nombre y tasa de un descuento del catálogo.
func (uc *DescuentoUseCase) ActualizarTasa(ctx context.Context, id int64, in dto.TasaRequest) error {
	if in.Nombre == "" || !tasaValida(in.TasaPorcentaje) {
		return domain.ErrInvalidInput
	}
	ok, err := uc.descuentoRepo.ActualizarTasa(&entity.Descuento{ID: id, Nombre: in.Nombre, TasaPorcentaje: in.TasaPorcentaje})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// AplicarRegla aplica un descuento con ámbito producto, categoría o global.
// El objetivo debe corresponder al ámbito: producto exige código, categoría
// exige ID, global no admite ninguno.
func (uc *DescuentoUseCase) AplicarRegla(ctx context.Context, in dto.AplicarDescuentoRequest) (*dto.ReglaDescuentoResponse, error) {
	if in.DescuentoID <= 0 || !entity.TipoAplicacionValido(in.TipoAplicacion) {
		return nil, domain.ErrInvalidInput
	}
	switch in.TipoAplicacion {
	case entity.DescuentoPorProducto:
		if in.ProductoCodigo == nil || *in.ProductoCodigo == "" || in.CategoriaID != nil {
			return nil, domain.ErrInvalidInput
		}
	case entity.DescuentoPorCategoria:
		if in.CategoriaID == nil || *in.CategoriaID <= 0 || in.ProductoCodigo != nil {
			return nil, domain.ErrInvalidInput
		}
	case entity.DescuentoGlobal:
		if in.ProductoCodigo != nil || in.CategoriaID != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	var fechaFin *time.Time
	if in.FechaFin != "" {
		t, err := time.Parse(formatoFechaCorta, in.FechaFin)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fechaFin = &t
	}

	regla := &entity.ReglaDescuento{
		DescuentoID:    in.DescuentoID,
		TipoAplicacion: in.TipoAplicacion,
		ProductoCodigo: in.ProductoCodigo,
		CategoriaID:    in.CategoriaID,
		FechaInicio:    time.Now(),
		FechaFin:       fechaFin,
	}
	if err := uc.descuentoRepo.AplicarRegla(regla); err != nil {
		return nil, err
	}

	resp := &dto.ReglaDescuentoResponse{
		ReglaID:        regla.AplicacionID,
		TipoAplicacion: regla.TipoAplicacion,
		FechaInicio:    regla.FechaInicio.Format(formatoFechaCorta),
	}
	if fechaFin != nil {
		resp.FechaFin = fechaFin.Format(formatoFechaCorta)
	}
	return resp, nil
}

// ListarReglas devuelve las reglas aplicadas con su objetivo resuelto.
func (uc *DescuentoUseCase) ListarReglas(ctx context.Context) ([]dto.ReglaDescuentoResponse, error) {
	filas, err := uc.descuentoRepo.ListarReglas()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReglaDescuentoResponse, 0, len(filas))
	for _, f := range filas {
		r := dto.ReglaDescuentoResponse{
			ReglaID:         f.ReglaID,
			NombreDescuento: f.NombreDescuento,
			Porcentaje:      f.Porcentaje,
			TipoAplicacion:  f.TipoAplicacion,
			AplicadoA:       f.AplicadoA,
			FechaInicio:     f.FechaInicio.Format(formatoFechaCorta),
		}
		if f.FechaFin != nil {
			r.FechaFin = f.FechaFin.Format(formatoFechaCorta)
		}
		out = append(out, r)
	}
	return out, nil
}

// EliminarRegla borra físicamente una regla aplicada (el único hard delete del sistema).
func (uc *DescuentoUseCase) EliminarRegla(ctx context.Context, aplicacionID int64) error {
	ok, err := uc.descuentoRepo.EliminarRegla(aplicacionID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
