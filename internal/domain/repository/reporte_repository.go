package repository

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
)

// ReporteRepository agrupa las consultas de solo lectura de reportes.
// Los umbrales de días llegan desde configuración, no como constantes del proceso.
type ReporteRepository interface {
	MejoresClientes(ctx context.Context, limit int) ([]dto.MejorClienteDTO, error)
	TopProductos(ctx context.Context, limit int) ([]dto.TopProductoDTO, error)
	StockBajo(ctx context.Context) ([]dto.ProductoStockBajoDTO, error)
	CreditosPorVencer(ctx context.Context, diasAlerta int) ([]dto.CreditoPorVencerDTO, error)
	VentasPorCobrar(ctx context.Context, plazoDias, diasAlerta int) ([]dto.VentaPorCobrarDTO, error)
}
