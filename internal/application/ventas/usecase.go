package ventas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02 15:04:05"

// CreditoConfig plazo de las cuentas por cobrar generadas en el checkout a crédito.
type CreditoConfig struct {
	PlazoDias int
}

// UseCase implementa el ciclo de vida de una venta: abrir cabecera, acumular
// líneas, fijar totales y liquidar (contado o crédito), más abonos a la
// cuenta por cobrar. Los pasos multi-tabla corren dentro de una transacción.
type UseCase struct {
	txRunner    TxRunner
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
	creditoCfg  CreditoConfig
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	creditoCfg CreditoConfig,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		ventaRepo:   ventaRepo,
		clienteRepo: clienteRepo,
		creditoCfg:  creditoCfg,
	}
}

// CrearCabecera abre una venta para un cliente existente. La venta nace en
// estado abierta con totales en cero.
func (uc *UseCase) CrearCabecera(ctx context.Context, vendedorID string, in dto.CrearVentaRequest) (*dto.CrearVentaResponse, error) {
	if in.ClienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	venta := &entity.Venta{
		ClienteID:      in.ClienteID,
		VendedorID:     vendedorID,
		FechaVenta:     time.Now(),
		EstadoPago:     entity.VentaAbierta,
		TotalNeto:      decimal.Zero,
		TotalImpuestos: decimal.Zero,
		TotalBruto:     decimal.Zero,
		TipoFactura:    in.TipoFactura,
	}
	if err := uc.ventaRepo.CrearCabecera(venta); err != nil {
		return nil, err
	}
	return &dto.CrearVentaResponse{
		VentaID: venta.ID,
		Mensaje: "venta creada",
	}, nil
}

// AgregarDetalle inserta una línea en una venta abierta y descuenta el stock
// del producto en la misma transacción. El decremento es condicional
// (WHERE stock_actual >= cantidad): si no alcanza, la venta y el stock quedan
// intactos. La operación no es idempotente: repetirla agrega otra línea.
func (uc *UseCase) AgregarDetalle(ctx context.Context, ventaID int64, in dto.AgregarDetalleVentaRequest) error {
	if in.ProductoCodigo == "" || in.Cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	if in.PrecioVenta.IsNegative() || in.DescuentoLinea.IsNegative() || in.ImpuestosLinea.IsNegative() {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		_ repository.ClienteRepository,
		_ repository.MovimientoRepository,
		_ repository.AuditoriaRepository,
	) error {
		venta, err := ventaRepo.GetByIDForUpdate(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}
		if venta.EstadoPago != entity.VentaAbierta {
			return domain.ErrDocumentoCerrado
		}

		producto, err := productoRepo.GetByCodigo(in.ProductoCodigo)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		ok, err := productoRepo.DescontarStock(in.ProductoCodigo, in.Cantidad)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrStockInsuficiente
		}

		return ventaRepo.AgregarDetalle(&entity.DetalleVenta{
			VentaID:        ventaID,
			ProductoCodigo: in.ProductoCodigo,
			Cantidad:       in.Cantidad,
			PrecioVenta:    in.PrecioVenta,
			DescuentoLinea: in.DescuentoLinea,
			ImpuestosLinea: in.ImpuestosLinea,
		})
	})
}

// ActualizarTotales fija neto e impuestos de una venta abierta. El total bruto
// se deriva siempre en el servidor como neto + impuestos.
func (uc *UseCase) ActualizarTotales(ctx context.Context, ventaID int64, in dto.ActualizarTotalesRequest) error {
	if in.TotalNeto.IsNegative() || in.TotalImpuestos.IsNegative() {
		return domain.ErrInvalidInput
	}
	bruto := in.TotalNeto.Add(in.TotalImpuestos)

	ok, err := uc.ventaRepo.ActualizarTotales(ventaID, in.TotalNeto, in.TotalImpuestos, bruto)
	if err != nil {
		return err
	}
	if !ok {
		venta, err := uc.ventaRepo.GetByID(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}
		return domain.ErrDocumentoCerrado
	}
	return nil
}

// Checkout liquida una venta abierta. Contado exige monto recibido suficiente
// y calcula el cambio; crédito exige cliente mayorista con cupo disponible y
// genera la cuenta por cobrar. Todo corre en una transacción con la cabecera
// bloqueada, así dos cajas no pueden liquidar la misma venta a la vez.
func (uc *UseCase) Checkout(ctx context.Context, ventaID int64, usuarioID string, in dto.CheckoutVentaRequest) (*dto.CheckoutVentaResponse, error) {
	if !entity.TipoPagoValido(in.TipoPago) {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.CheckoutVentaResponse
	err := uc.txRunner.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		_ repository.ProductoRepository,
		clienteRepo repository.ClienteRepository,
		movRepo repository.MovimientoRepository,
		audRepo repository.AuditoriaRepository,
	) error {
		venta, err := ventaRepo.GetByIDForUpdate(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}
		if venta.EstadoPago != entity.VentaAbierta {
			return domain.ErrDocumentoCerrado
		}

		opID := uuid.New().String()

		switch in.TipoPago {
		case entity.PagoContado:
			if in.MontoRecibido.LessThan(venta.TotalBruto) {
				return domain.ErrPagoInsuficiente
			}
			cambio := in.MontoRecibido.Sub(venta.TotalBruto)
			if err := ventaRepo.ActualizarEstado(ventaID, entity.VentaContado); err != nil {
				return err
			}
			resp = &dto.CheckoutVentaResponse{
				VentaID:    ventaID,
				TipoPago:   entity.PagoContado,
				TotalBruto: venta.TotalBruto,
				Cambio:     &cambio,
				Mensaje:    "venta liquidada de contado",
			}

		case entity.PagoCredito:
			cliente, err := clienteRepo.GetByID(venta.ClienteID)
			if err != nil {
				return err
			}
			if cliente == nil {
				return domain.ErrNotFound
			}
			if cliente.Tipo != entity.ClienteMayorista {
				return domain.ErrClienteNoMayorista
			}
			saldo, err := movRepo.SaldoPendienteCliente(venta.ClienteID)
			if err != nil {
				return err
			}
			if saldo.Add(venta.TotalBruto).GreaterThan(cliente.LimiteCredito) {
				return domain.ErrLimiteCreditoExcedido
			}
			mov := &entity.MovimientoFinanciero{
				Tipo:             entity.MovimientoCuentaCobrar,
				DocumentoID:      ventaID,
				FechaVencimiento: time.Now().AddDate(0, 0, uc.creditoCfg.PlazoDias),
				SaldoPendiente:   venta.TotalBruto,
				Estado:           entity.MovimientoPendiente,
			}
			if err := movRepo.Crear(mov); err != nil {
				return err
			}
			if err := ventaRepo.ActualizarEstado(ventaID, entity.VentaCredito); err != nil {
				return err
			}
			resp = &dto.CheckoutVentaResponse{
				VentaID:    ventaID,
				TipoPago:   entity.PagoCredito,
				TotalBruto: venta.TotalBruto,
				Mensaje:    "venta liquidada a crédito",
			}
		}

		return audRepo.Crear(&entity.RegistroAuditoria{
			FechaOperacion: time.Now(),
			Operacion:      entity.OperacionCheckoutVenta,
			UsuarioID:      usuarioID,
			Motivo:         "liquidación de venta",
			DetallesCambio: fmt.Sprintf("op=%s venta=%d tipo_pago=%s total=%s", opID, ventaID, in.TipoPago, venta.TotalBruto.StringFixed(2)),
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// PagarVenta abona a la cuenta por cobrar de una venta a crédito. El saldo
// nunca queda negativo; al llegar a cero el movimiento pasa a pagado.
func (uc *UseCase) PagarVenta(ctx context.Context, ventaID int64, usuarioID string, in dto.PagarVentaRequest) (*dto.PagarVentaResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.PagarVentaResponse
	err := uc.txRunner.RunVenta(ctx, func(
		_ repository.VentaRepository,
		_ repository.ProductoRepository,
		_ repository.ClienteRepository,
		movRepo repository.MovimientoRepository,
		audRepo repository.AuditoriaRepository,
	) error {
		mov, err := movRepo.GetPorDocumentoForUpdate(entity.MovimientoCuentaCobrar, ventaID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Estado == entity.MovimientoPagado {
			return domain.ErrConflict
		}
		if in.Monto.GreaterThan(mov.SaldoPendiente) {
			return domain.ErrInvalidInput
		}

		nuevoSaldo := mov.SaldoPendiente.Sub(in.Monto)
		estado := entity.MovimientoParcial
		if nuevoSaldo.IsZero() {
			estado = entity.MovimientoPagado
		}
		if err := movRepo.ActualizarSaldo(mov.ID, nuevoSaldo, estado); err != nil {
			return err
		}

		if err := audRepo.Crear(&entity.RegistroAuditoria{
			FechaOperacion: time.Now(),
			Operacion:      entity.OperacionPagoVenta,
			UsuarioID:      usuarioID,
			Motivo:         "abono a cuenta por cobrar",
			DetallesCambio: fmt.Sprintf("op=%s venta=%d monto=%s saldo=%s", uuid.New().String(), ventaID, in.Monto.StringFixed(2), nuevoSaldo.StringFixed(2)),
		}); err != nil {
			return err
		}

		resp = &dto.PagarVentaResponse{
			VentaID:        ventaID,
			SaldoPendiente: nuevoSaldo,
			Estado:         estado,
			Mensaje:        "abono registrado",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListarAbiertas devuelve las ventas en estado abierta (las que la caja puede seguir editando).
func (uc *UseCase) ListarAbiertas(ctx context.Context) ([]dto.VentaResumenResponse, error) {
	filas, err := uc.ventaRepo.ListarAbiertas()
	if err != nil {
		return nil, err
	}
	return toVentaResumenes(filas), nil
}

// Historial devuelve las ventas liquidadas (contado y crédito), más reciente primero.
func (uc *UseCase) Historial(ctx context.Context) ([]dto.VentaResumenResponse, error) {
	filas, err := uc.ventaRepo.ListarLiquidadas()
	if err != nil {
		return nil, err
	}
	return toVentaResumenes(filas), nil
}

// Factura devuelve la cabecera y las líneas de una venta.
func (uc *UseCase) Factura(ctx context.Context, ventaID int64) (*dto.FacturaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(ventaID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(venta.ClienteID)
	if err != nil {
		return nil, err
	}
	lineas, err := uc.ventaRepo.GetDetalles(ventaID)
	if err != nil {
		return nil, err
	}

	resumen := dto.VentaResumenResponse{
		VentaID:        venta.ID,
		ClienteID:      venta.ClienteID,
		Fecha:          venta.FechaVenta.Format(formatoFecha),
		TotalNeto:      venta.TotalNeto,
		TotalImpuestos: venta.TotalImpuestos,
		TotalBruto:     venta.TotalBruto,
		EstadoPago:     venta.EstadoPago,
	}
	if cliente != nil {
		resumen.Cliente = cliente.Nombre + " " + cliente.Apellidos
	}

	detalles := make([]dto.DetalleVentaResponse, 0, len(lineas))
	for _, l := range lineas {
		detalles = append(detalles, dto.DetalleVentaResponse{
			ProductoCodigo: l.ProductoCodigo,
			Producto:       l.ProductoNombre,
			Cantidad:       l.Cantidad,
			PrecioVenta:    l.PrecioVenta,
			DescuentoLinea: l.DescuentoLinea,
			ImpuestosLinea: l.ImpuestosLinea,
		})
	}
	return &dto.FacturaResponse{Venta: resumen, Detalles: detalles}, nil
}

func toVentaResumenes(filas []repository.VentaResumen) []dto.VentaResumenResponse {
	out := make([]dto.VentaResumenResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.VentaResumenResponse{
			VentaID:        f.VentaID,
			ClienteID:      f.ClienteID,
			Cliente:        f.ClienteNombre,
			Fecha:          f.FechaVenta.Format(formatoFecha),
			TotalNeto:      f.TotalNeto,
			TotalImpuestos: f.TotalImpuestos,
			TotalBruto:     f.TotalBruto,
			EstadoPago:     f.EstadoPago,
		})
	}
	return out
}
