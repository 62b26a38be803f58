package dto

import "github.com/shopspring/decimal"

// CrearVentaRequest abre una cabecera de venta para un cliente.
type CrearVentaRequest struct {
	ClienteID   string `json:"cliente_id"`
	TipoFactura string `json:"tipo_factura"`
}

// CrearVentaResponse devuelve el número asignado a la venta abierta.
type CrearVentaResponse struct {
	VentaID int64  `json:"venta_id"`
	Mensaje string `json:"mensaje"`
}

// AgregarDetalleVentaRequest agrega una línea a una venta abierta.
// Cada llamada inserta una línea nueva; repetir la petición duplica la línea.
type AgregarDetalleVentaRequest struct {
	ProductoCodigo string          `json:"producto_codigo"`
	Cantidad       int64           `json:"cantidad"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	DescuentoLinea decimal.Decimal `json:"descuento_linea"`
	ImpuestosLinea decimal.Decimal `json:"impuestos_linea"`
}

// ActualizarTotalesRequest fija los totales calculados por la caja.
// El total bruto se deriva en el servidor como neto + impuestos.
type ActualizarTotalesRequest struct {
	TotalNeto      decimal.Decimal `json:"total_neto"`
	TotalImpuestos decimal.Decimal `json:"total_impuestos"`
}

// CheckoutVentaRequest liquida una venta abierta. MontoRecibido solo aplica
// al pago de contado.
type CheckoutVentaRequest struct {
	TipoPago      string          `json:"tipo_pago"`
	MontoRecibido decimal.Decimal `json:"monto_recibido"`
}

// CheckoutVentaResponse resultado de la liquidación.
type CheckoutVentaResponse struct {
	VentaID    int64            `json:"venta_id"`
	TipoPago   string           `json:"tipo_pago"`
	TotalBruto decimal.Decimal  `json:"total_bruto"`
	Cambio     *decimal.Decimal `json:"cambio,omitempty"`
	Mensaje    string           `json:"mensaje"`
}

// PagarVentaRequest abona a la cuenta por cobrar de una venta a crédito.
type PagarVentaRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// PagarVentaResponse saldo resultante tras el abono.
type PagarVentaResponse struct {
	VentaID        int64           `json:"venta_id"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Estado         string          `json:"estado"`
	Mensaje        string          `json:"mensaje"`
}

// VentaResumenResponse cabecera de venta en listados.
type VentaResumenResponse struct {
	VentaID        int64           `json:"venta_id"`
	ClienteID      string          `json:"cliente_id"`
	Cliente        string          `json:"cliente"`
	Fecha          string          `json:"fecha"`
	TotalNeto      decimal.Decimal `json:"total_neto"`
	TotalImpuestos decimal.Decimal `json:"total_impuestos"`
	TotalBruto     decimal.Decimal `json:"total_bruto"`
	EstadoPago     string          `json:"estado_pago"`
}

// DetalleVentaResponse línea de venta en la factura.
type DetalleVentaResponse struct {
	ProductoCodigo string          `json:"producto_codigo"`
	Producto       string          `json:"producto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	DescuentoLinea decimal.Decimal `json:"descuento_linea"`
	ImpuestosLinea decimal.Decimal `json:"impuestos_linea"`
}

// FacturaResponse cabecera más líneas de una venta.
type FacturaResponse struct {
	Venta    VentaResumenResponse   `json:"venta"`
	Detalles []DetalleVentaResponse `json:"detalles"`
}

// AjustarStockRequest ajuste manual de inventario de un producto.
// Cantidad positiva suma, negativa resta (sin dejar el stock bajo cero).
type AjustarStockRequest struct {
	Cantidad int64  `json:"cantidad"`
	Motivo   string `json:"motivo"`
}

// CrearCompraRequest abre una cabecera de compra a un proveedor.
// NumeroDocumento es el número de factura del proveedor.
type CrearCompraRequest struct {
	ProveedorID     string `json:"proveedor_id"`
	NumeroDocumento string `json:"numero_documento"`
	TipoPago        string `json:"tipo_pago"`
}

// CrearCompraResponse devuelve el número asignado a la compra abierta.
type CrearCompraResponse struct {
	CompraID int64  `json:"compra_id"`
	Mensaje  string `json:"mensaje"`
}

// AgregarDetalleCompraRequest agrega una línea a una compra abierta e
// incrementa el stock del producto.
type AgregarDetalleCompraRequest struct {
	ProductoCodigo string          `json:"producto_codigo"`
	Cantidad       int64           `json:"cantidad"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	DescuentoLinea decimal.Decimal `json:"descuento_linea"`
	ImpuestosLinea decimal.Decimal `json:"impuestos_linea"`
}

// CompraResumenResponse cabecera de compra en listados.
type CompraResumenResponse struct {
	CompraID        int64           `json:"compra_id"`
	ProveedorID     string          `json:"proveedor_id"`
	Proveedor       string          `json:"proveedor"`
	NumeroDocumento string          `json:"numero_documento"`
	TipoPago        string          `json:"tipo_pago"`
	Fecha           string          `json:"fecha"`
	TotalNeto       decimal.Decimal `json:"total_neto"`
	TotalImpuestos  decimal.Decimal `json:"total_impuestos"`
	TotalBruto      decimal.Decimal `json:"total_bruto"`
	Estado          string          `json:"estado"`
}

// DetalleCompraResponse línea de compra.
type DetalleCompraResponse struct {
	ProductoCodigo string          `json:"producto_codigo"`
	Producto       string          `json:"producto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	DescuentoLinea decimal.Decimal `json:"descuento_linea"`
	ImpuestosLinea decimal.Decimal `json:"impuestos_linea"`
}

// CompraDetalladaResponse cabecera más líneas de una compra.
type CompraDetalladaResponse struct {
	Compra   CompraResumenResponse   `json:"compra"`
	Detalles []DetalleCompraResponse `json:"detalles"`
}
