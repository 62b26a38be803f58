package reportes

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// Config umbrales de los reportes. Se inyectan desde configuración en vez de
// vivir como constantes del proceso.
type Config struct {
	TopLimite             int // filas de los rankings (mejores clientes, top productos)
	PlazoCreditoVentaDias int
	AlertaComprasDias     int
	AlertaVentasDias      int
}

// UseCase reportes de solo lectura sobre ventas, stock y crédito.
type UseCase struct {
	reporteRepo repository.ReporteRepository
	cfg         Config
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reporteRepo repository.ReporteRepository, cfg Config) *UseCase {
	if cfg.TopLimite <= 0 {
		cfg.TopLimite = 50
	}
	return &UseCase{reporteRepo: reporteRepo, cfg: cfg}
}

// MejoresClientes ranking de clientes por monto comprado.
func (uc *UseCase) MejoresClientes(ctx context.Context) ([]dto.MejorClienteDTO, error) {
	return uc.reporteRepo.MejoresClientes(ctx, uc.cfg.TopLimite)
}

// TopProductos ranking de productos por unidades vendidas.
func (uc *UseCase) TopProductos(ctx context.Context) ([]dto.TopProductoDTO, error) {
	return uc.reporteRepo.TopProductos(ctx, uc.cfg.TopLimite)
}

// StockBajo productos activos con stock igual o bajo el mínimo.
func (uc *UseCase) StockBajo(ctx context.Context) ([]dto.ProductoStockBajoDTO, error) {
	return uc.reporteRepo.StockBajo(ctx)
}

// CreditosPorVencer cuentas por pagar próximas a su fecha límite.
func (uc *UseCase) CreditosPorVencer(ctx context.Context) ([]dto.CreditoPorVencerDTO, error) {
	return uc.reporteRepo.CreditosPorVencer(ctx, uc.cfg.AlertaComprasDias)
}

// VentasPorCobrar cuentas por cobrar con su urgencia de cobro.
func (uc *UseCase) VentasPorCobrar(ctx context.Context) ([]dto.VentaPorCobrarDTO, error) {
	return uc.reporteRepo.VentasPorCobrar(ctx, uc.cfg.PlazoCreditoVentaDias, uc.cfg.AlertaVentasDias)
}
