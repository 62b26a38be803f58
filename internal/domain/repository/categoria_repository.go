package repository

import "github.com/jcsalazar/punto-venta-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	// Crear asigna el ID desde la secuencia.
	Crear(c *entity.Categoria) error
	Listar() ([]*entity.Categoria, error)
}
