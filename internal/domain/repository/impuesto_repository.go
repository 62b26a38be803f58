package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// ImpuestoProducto es la vista de una tasa aplicada a un producto (join N:M).
type ImpuestoProducto struct {
	ProductoCodigo string
	Nombre         string
	TasaPorcentaje decimal.Decimal
}

// ImpuestoRepository define el puerto de persistencia para el catálogo de
// impuestos y su asociación N:M con productos.
type ImpuestoRepository interface {
	Crear(i *entity.Impuesto) error
	Listar() ([]*entity.Impuesto, error)
	Actualizar(i *entity.Impuesto) (bool, error)
	ImpuestosDeProducto(codigo string) ([]ImpuestoProducto, error)
	AsociarProducto(codigo string, impuestoID int64) error
	// ReemplazarAsociacion elimina la asociación previa e inserta la nueva.
	ReemplazarAsociacion(codigo string, impuestoID int64) error
}
