package catalogo

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso de categorías.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo}
}

// Crear da de alta una categoría. El nombre repetido devuelve ErrDuplicate.
func (uc *CategoriaUseCase) Crear(ctx context.Context, in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Categoria{Nombre: in.Nombre}
	if err := uc.categoriaRepo.Crear(c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// Listar devuelve todas las categorías.
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	filas, err := uc.categoriaRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(filas))
	for _, c := range filas {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}
