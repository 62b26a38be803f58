package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// ReglaDescuentoVista es la fila del listado de reglas aplicadas, con el
// nombre del descuento y el objetivo resuelto (producto, categoría o GLOBAL).
type ReglaDescuentoVista struct {
	ReglaID         int64
	NombreDescuento string
	Porcentaje      decimal.Decimal
	TipoAplicacion  string
	AplicadoA       string
	FechaInicio     time.Time
	FechaFin        *time.Time
}

// DescuentoRepository define el puerto para el catálogo de descuentos y las
// reglas aplicadas.
type DescuentoRepository interface {
	CrearTasa(d *entity.Descuento) error
	ListarCatalogo() ([]*entity.Descuento, error)
	ActualizarTasa(d *entity.Descuento) (bool, error)
	// AplicarRegla asigna AplicacionID desde la secuencia.
	AplicarRegla(r *entity.ReglaDescuento) error
	ListarReglas() ([]ReglaDescuentoVista, error)
	// EliminarRegla borra físicamente la regla. Devuelve false si no existe.
	EliminarRegla(aplicacionID int64) (bool, error)
}
