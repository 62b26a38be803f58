package repository

import "github.com/jcsalazar/punto-venta-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Crear(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Listar() ([]*entity.Proveedor, error)
	Actualizar(p *entity.Proveedor) (bool, error)
}
