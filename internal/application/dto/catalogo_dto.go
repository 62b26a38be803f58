package dto

import (
	"github.com/shopspring/decimal"
)

// CrearCategoriaRequest alta de categoría.
type CrearCategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// CategoriaResponse categoría en respuestas.
type CategoriaResponse struct {
	ID     int64  `json:"categoria_id"`
	Nombre string `json:"nombre"`
}

// CrearRolRequest alta de rol.
type CrearRolRequest struct {
	Nombre string `json:"nombre_rol"`
}

// RolResponse rol en respuestas.
type RolResponse struct {
	ID     int64  `json:"rol_id"`
	Nombre string `json:"nombre_rol"`
}

// TasaRequest alta/actualización de una tasa (impuesto o descuento).
type TasaRequest struct {
	Nombre         string          `json:"nombre"`
	TasaPorcentaje decimal.Decimal `json:"tasa_porcentaje"`
}

// TasaResponse tasa del catálogo en respuestas.
type TasaResponse struct {
	ID         int64           `json:"id"`
	Nombre     string          `json:"nombre"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// ImpuestoProductoResponse tasa aplicada a un producto.
type ImpuestoProductoResponse struct {
	ProductoCodigo string          `json:"producto_codigo"`
	Nombre         string          `json:"nombre"`
	TasaPorcentaje decimal.Decimal `json:"tasa_porcentaje"`
}

// AsociarImpuestoRequest asocia una tasa del catálogo a un producto.
type AsociarImpuestoRequest struct {
	ProductoCodigo string `json:"producto_codigo"`
	ImpuestoID     int64  `json:"impuesto_id"`
}

// AplicarDescuentoRequest aplica una tasa de descuento con ámbito
// producto, categoría o global y vencimiento opcional (YYYY-MM-DD).
type AplicarDescuentoRequest struct {
	DescuentoID    int64   `json:"descuento_id"`
	TipoAplicacion string  `json:"tipo_aplicacion"`
	ProductoCodigo *string `json:"producto_codigo"`
	CategoriaID    *int64  `json:"categoria_id"`
	FechaFin       string  `json:"fecha_fin"`
}

// ReglaDescuentoResponse regla aplicada en respuestas.
type ReglaDescuentoResponse struct {
	ReglaID         int64           `json:"regla_id"`
	NombreDescuento string          `json:"nombre_descuento"`
	Porcentaje      decimal.Decimal `json:"porcentaje"`
	TipoAplicacion  string          `json:"tipo_aplicacion"`
	AplicadoA       string          `json:"aplicado_a"`
	FechaInicio     string          `json:"fecha_inicio"`
	FechaFin        string          `json:"fecha_fin,omitempty"`
}
