package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest alta de producto. El stock inicial siempre es cero;
// solo las compras lo incrementan.
type CrearProductoRequest struct {
	Codigo         string          `json:"producto_codigo"`
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	Descripcion    string          `json:"descripcion"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	UnidadMedida   string          `json:"unidad_medida"`
	StockMinimo    int64           `json:"stock_minimo"`
	CategoriaID    int64           `json:"categoria_id"`
	Estado         string          `json:"estado"`
	TasaImpuestoID *int64          `json:"tasa_impuesto_id"`
}

// ActualizarProductoRequest actualización de producto por código.
// No permite tocar el stock (se maneja vía compras/ventas).
type ActualizarProductoRequest struct {
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	Descripcion    string          `json:"descripcion"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	UnidadMedida   string          `json:"unidad_medida"`
	StockMinimo    int64           `json:"stock_minimo"`
	CategoriaID    int64           `json:"categoria_id"`
	Estado         string          `json:"estado"`
	TasaImpuestoID *int64          `json:"tasa_impuesto_id"`
}

// ProductoResponse fila del catálogo con alias de despliegue.
type ProductoResponse struct {
	Codigo         string           `json:"producto_codigo"`
	Nombre         string           `json:"nombre"`
	Marca          string           `json:"marca"`
	Descripcion    string           `json:"descripcion"`
	PrecioVenta    decimal.Decimal  `json:"precio_venta"`
	PrecioCosto    decimal.Decimal  `json:"precio_costo"`
	UnidadMedida   string           `json:"unidad_medida"`
	StockActual    int64            `json:"stock_actual"`
	StockMinimo    int64            `json:"stock_minimo"`
	CategoriaID    int64            `json:"categoria_id"`
	Categoria      string           `json:"categoria,omitempty"`
	Estado         string           `json:"estado"`
	TasaImpuestoID *int64           `json:"tasa_impuesto_id,omitempty"`
	TasaImpuesto   *decimal.Decimal `json:"tasa_impuesto,omitempty"`
}
