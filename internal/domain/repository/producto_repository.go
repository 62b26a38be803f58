package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// ProductoVista es la fila del listado de catálogo con los alias de despliegue
// (nombre de categoría y tasa de impuesto asociada).
type ProductoVista struct {
	entity.Producto
	CategoriaNombre string
	ImpuestoNombre  *string
	TasaImpuesto    *decimal.Decimal
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// El stock solo se muta por los métodos de stock; Crear/Actualizar no lo tocan.
type ProductoRepository interface {
	// Crear inserta el producto y, si trae ImpuestoID, la fila en impuestos_productos.
	Crear(p *entity.Producto) error
	GetByCodigo(codigo string) (*entity.Producto, error)
	Listar() ([]ProductoVista, error)
	// Actualizar modifica el catálogo y reemplaza la asociación de impuesto.
	// Devuelve false si el código no existe.
	Actualizar(p *entity.Producto) (bool, error)
	// Buscar busca por código o nombre (para la caja).
	Buscar(termino string, limit int) ([]*entity.Producto, error)
	// DescontarStock ejecuta el decremento condicional
	// (UPDATE ... WHERE stock_actual >= cantidad). Devuelve false si no
	// había stock suficiente; en ese caso la fila no se muta.
	DescontarStock(codigo string, cantidad int64) (bool, error)
	AumentarStock(codigo string, cantidad int64) error
}
