package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcsalazar/punto-venta-api/internal/application/finanzas"
	"github.com/jcsalazar/punto-venta-api/internal/application/reportes"
)

// ReporteHandler maneja los reportes de solo lectura (protegido).
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// MejoresClientes ranking de clientes por monto comprado.
func (h *ReporteHandler) MejoresClientes(c *fiber.Ctx) error {
	out, err := h.uc.MejoresClientes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProductos ranking de productos por unidades vendidas.
func (h *ReporteHandler) TopProductos(c *fiber.Ctx) error {
	out, err := h.uc.TopProductos(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockBajo productos activos con stock igual o bajo el mínimo.
func (h *ReporteHandler) StockBajo(c *fiber.Ctx) error {
	out, err := h.uc.StockBajo(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreditosPorVencer cuentas por pagar próximas a vencer.
func (h *ReporteHandler) CreditosPorVencer(c *fiber.Ctx) error {
	out, err := h.uc.CreditosPorVencer(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VentasPorCobrar cuentas por cobrar con su urgencia.
func (h *ReporteHandler) VentasPorCobrar(c *fiber.Ctx) error {
	out, err := h.uc.VentasPorCobrar(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FinanzasHandler maneja movimientos financieros y auditoría (protegido).
type FinanzasHandler struct {
	uc *finanzas.UseCase
}

// NewFinanzasHandler construye el handler.
func NewFinanzasHandler(uc *finanzas.UseCase) *FinanzasHandler {
	return &FinanzasHandler{uc: uc}
}

// MovimientosPendientes cuentas por cobrar y por pagar sin liquidar.
func (h *FinanzasHandler) MovimientosPendientes(c *fiber.Ctx) error {
	out, err := h.uc.MovimientosPendientes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AuditoriaReciente últimas entradas del rastro de auditoría (solo admin).
func (h *FinanzasHandler) AuditoriaReciente(c *fiber.Ctx) error {
	out, err := h.uc.AuditoriaReciente(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
