package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ámbitos de aplicación de una regla de descuento.
const (
	DescuentoPorProducto  = "producto"
	DescuentoPorCategoria = "categoria"
	DescuentoGlobal       = "global"
)

// TipoAplicacionValido valida el ámbito recibido en la frontera HTTP.
func TipoAplicacionValido(tipo string) bool {
	switch tipo {
	case DescuentoPorProducto, DescuentoPorCategoria, DescuentoGlobal:
		return true
	}
	return false
}

// Descuento es una tasa del catálogo de descuentos.
type Descuento struct {
	ID             int64
	Nombre         string
	TasaPorcentaje decimal.Decimal
}

// ReglaDescuento es una instancia aplicada de un descuento del catálogo,
// con ámbito producto, categoría o global y vencimiento opcional.
// Es el único registro del sistema que se elimina físicamente.
type ReglaDescuento struct {
	AplicacionID   int64
	DescuentoID    int64
	TipoAplicacion string  // producto | categoria | global
	ProductoCodigo *string // solo si TipoAplicacion = producto
	CategoriaID    *int64  // solo si TipoAplicacion = categoria
	FechaInicio    time.Time
	FechaFin       *time.Time
}
