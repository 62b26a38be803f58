package catalogo

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// ProductoUseCase casos de uso del catálogo de productos, incluido el ajuste
// manual de stock de bodega.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Crear da de alta un producto con stock cero. El código repetido devuelve
// ErrDuplicate.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" || in.CategoriaID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioVenta.IsNegative() || in.PrecioCosto.IsNegative() || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.ProductoActivo
	}
	if estado != entity.ProductoActivo && estado != entity.ProductoInactivo {
		return nil, domain.ErrInvalidInput
	}

	p := &entity.Producto{
		Codigo:       in.Codigo,
		Nombre:       in.Nombre,
		Marca:        in.Marca,
		Descripcion:  in.Descripcion,
		PrecioVenta:  in.PrecioVenta,
		PrecioCosto:  in.PrecioCosto,
		UnidadMedida: in.UnidadMedida,
		StockActual:  0,
		StockMinimo:  in.StockMinimo,
		CategoriaID:  in.CategoriaID,
		ImpuestoID:   in.TasaImpuestoID,
		Estado:       estado,
	}
	if err := uc.productoRepo.Crear(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Listar devuelve el catálogo con nombre de categoría y tasa asociada.
func (uc *ProductoUseCase) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	filas, err := uc.productoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(filas))
	for _, f := range filas {
		r := *toProductoResponse(&f.Producto)
		r.Categoria = f.CategoriaNombre
		r.TasaImpuesto = f.TasaImpuesto
		out = append(out, r)
	}
	return out, nil
}

// Get devuelve un producto por código.
func (uc *ProductoUseCase) Get(ctx context.Context, codigo string) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(p), nil
}

// Actualizar modifica los datos de catálogo de un producto. El stock no se
// toca por esta vía.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, codigo string, in dto.ActualizarProductoRequest) error {
	if in.Nombre == "" || in.CategoriaID <= 0 {
		return domain.ErrInvalidInput
	}
	if in.PrecioVenta.IsNegative() || in.PrecioCosto.IsNegative() || in.StockMinimo < 0 {
		return domain.ErrInvalidInput
	}
	if in.Estado != entity.ProductoActivo && in.Estado != entity.ProductoInactivo {
		return domain.ErrInvalidInput
	}

	ok, err := uc.productoRepo.Actualizar(&entity.Producto{
		Codigo:       codigo,
		Nombre:       in.Nombre,
		Marca:        in.Marca,
		Descripcion:  in.Descripcion,
		PrecioVenta:  in.PrecioVenta,
		PrecioCosto:  in.PrecioCosto,
		UnidadMedida: in.UnidadMedida,
		StockMinimo:  in.StockMinimo,
		CategoriaID:  in.CategoriaID,
		ImpuestoID:   in.TasaImpuestoID,
		Estado:       in.Estado,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Buscar busca productos por código o nombre (autocompletar de la caja).
func (uc *ProductoUseCase) Buscar(ctx context.Context, termino string) ([]dto.ProductoResponse, error) {
	if termino == "" {
		return nil, domain.ErrInvalidInput
	}
	filas, err := uc.productoRepo.Buscar(termino, 20)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(filas))
	for _, p := range filas {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// AjustarStock ajusta el stock manualmente (conteo físico de bodega).
// Cantidad positiva suma; negativa resta sin dejar el stock bajo cero.
func (uc *ProductoUseCase) AjustarStock(ctx context.Context, codigo string, in dto.AjustarStockRequest) error {
	if in.Cantidad == 0 {
		return domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByCodigo(codigo)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	if in.Cantidad > 0 {
		return uc.productoRepo.AumentarStock(codigo, in.Cantidad)
	}
	ok, err := uc.productoRepo.DescontarStock(codigo, -in.Cantidad)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrStockInsuficiente
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Marca:          p.Marca,
		Descripcion:    p.Descripcion,
		PrecioVenta:    p.PrecioVenta,
		PrecioCosto:    p.PrecioCosto,
		UnidadMedida:   p.UnidadMedida,
		StockActual:    p.StockActual,
		StockMinimo:    p.StockMinimo,
		CategoriaID:    p.CategoriaID,
		Estado:         p.Estado,
		TasaImpuestoID: p.ImpuestoID,
	}
}
