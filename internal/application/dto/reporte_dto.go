package dto

import "github.com/shopspring/decimal"

// MejorClienteDTO cliente ordenado por monto total comprado.
type MejorClienteDTO struct {
	ClienteID   string          `json:"cliente_id"`
	Nombre      string          `json:"nombre"`
	TotalCompra decimal.Decimal `json:"total_compra"`
	NumVentas   int64           `json:"num_ventas"`
}

// TopProductoDTO producto ordenado por unidades vendidas.
type TopProductoDTO struct {
	ProductoCodigo   string          `json:"producto_codigo"`
	Nombre           string          `json:"nombre"`
	UnidadesVendidas int64           `json:"unidades_vendidas"`
	TotalVendido     decimal.Decimal `json:"total_vendido"`
}

// ProductoStockBajoDTO producto activo con stock igual o bajo el mínimo.
type ProductoStockBajoDTO struct {
	ProductoCodigo string `json:"producto_codigo"`
	Nombre         string `json:"nombre"`
	StockActual    int64  `json:"stock_actual"`
	StockMinimo    int64  `json:"stock_minimo"`
}

// CreditoPorVencerDTO cuenta por pagar próxima a su fecha límite.
type CreditoPorVencerDTO struct {
	MovimientoID   int64           `json:"movimiento_id"`
	CompraID       int64           `json:"compra_id"`
	Proveedor      string          `json:"proveedor"`
	FechaLimite    string          `json:"fecha_limite"`
	DiasRestantes  int             `json:"dias_restantes"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
}

// VentaPorCobrarDTO cuenta por cobrar con su urgencia de cobro.
type VentaPorCobrarDTO struct {
	MovimientoID   int64           `json:"movimiento_id"`
	VentaID        int64           `json:"venta_id"`
	Cliente        string          `json:"cliente"`
	FechaLimite    string          `json:"fecha_limite"`
	DiasRestantes  int             `json:"dias_restantes"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Urgente        bool            `json:"urgente"`
}
