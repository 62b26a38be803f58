package repository

import "github.com/jcsalazar/punto-venta-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Crear(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	Listar() ([]*entity.Cliente, error)
	// Actualizar devuelve false si el cliente no existe.
	Actualizar(c *entity.Cliente) (bool, error)
}
