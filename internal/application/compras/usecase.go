package compras

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

// UseCase implementa el ciclo de vida de una compra: abrir cabecera, recibir
// líneas (que suman stock), fijar totales y cerrar. El cierre a crédito
// genera la cuenta por pagar con el plazo del proveedor.
type UseCase struct {
	txRunner      TxRunner
	compraRepo    repository.CompraRepository
	proveedorRepo repository.ProveedorRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(
	txRunner TxRunner,
	compraRepo repository.CompraRepository,
	proveedorRepo repository.ProveedorRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		compraRepo:    compraRepo,
		proveedorRepo: proveedorRepo,
	}
}

// CrearCabecera abre una compra para un proveedor existente. El número de
// documento (factura del proveedor) es único; repetirlo devuelve ErrDuplicate.
func (uc *UseCase) CrearCabecera(ctx context.Context, in dto.CrearCompraRequest) (*dto.CrearCompraResponse, error) {
	if in.ProveedorID == "" || in.NumeroDocumento == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoPagoValido(in.TipoPago) {
		return nil, domain.ErrInvalidInput
	}
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}

	compra := &entity.Compra{
		ProveedorID:     in.ProveedorID,
		NumeroDocumento: in.NumeroDocumento,
		TipoPago:        in.TipoPago,
		Estado:          entity.CompraAbierta,
		TotalNeto:       decimal.Zero,
		TotalImpuestos:  decimal.Zero,
		TotalBruto:      decimal.Zero,
		FechaCompra:     time.Now(),
	}
	if err := uc.compraRepo.CrearCabecera(compra); err != nil {
		return nil, err
	}
	return &dto.CrearCompraResponse{
		CompraID: compra.ID,
		Mensaje:  "compra creada",
	}, nil
}

// AgregarDetalle inserta una línea en una compra abierta y aumenta el stock
// del producto en la misma transacción: o entran la línea y el stock, o no
// entra nada.
func (uc *UseCase) AgregarDetalle(ctx context.Context, compraID int64, in dto.AgregarDetalleCompraRequest) error {
	if in.ProductoCodigo == "" || in.Cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	if in.PrecioCosto.IsNegative() || in.DescuentoLinea.IsNegative() || in.ImpuestosLinea.IsNegative() {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.RunCompra(ctx, func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
		_ repository.ProveedorRepository,
		_ repository.MovimientoRepository,
		_ repository.AuditoriaRepository,
	) error {
		compra, err := compraRepo.GetByIDForUpdate(compraID)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		if compra.Estado != entity.CompraAbierta {
			return domain.ErrDocumentoCerrado
		}

		producto, err := productoRepo.GetByCodigo(in.ProductoCodigo)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		if err := compraRepo.AgregarDetalle(&entity.DetalleCompra{
			CompraID:       compraID,
			ProductoCodigo: in.ProductoCodigo,
			Cantidad:       in.Cantidad,
			PrecioCosto:    in.PrecioCosto,
			DescuentoLinea: in.DescuentoLinea,
			ImpuestosLinea: in.ImpuestosLinea,
		}); err != nil {
			return err
		}
		return productoRepo.AumentarStock(in.ProductoCodigo, in.Cantidad)
	})
}

// ActualizarTotales fija neto e impuestos de una compra abierta. El total
// bruto se deriva siempre en el servidor como neto + impuestos.
func (uc *UseCase) ActualizarTotales(ctx context.Context, compraID int64, in dto.ActualizarTotalesRequest) error {
	if in.TotalNeto.IsNegative() || in.TotalImpuestos.IsNegative() {
		return domain.ErrInvalidInput
	}
	bruto := in.TotalNeto.Add(in.TotalImpuestos)

	ok, err := uc.compraRepo.ActualizarTotales(compraID, in.TotalNeto, in.TotalImpuestos, bruto)
	if err != nil {
		return err
	}
	if !ok {
		compra, err := uc.compraRepo.GetByID(compraID)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		return domain.ErrDocumentoCerrado
	}
	return nil
}

// Cerrar cierra una compra abierta. Si el tipo de pago es crédito crea la
// cuenta por pagar con vencimiento según el plazo del proveedor. Corre en
// transacción con la cabecera bloqueada.
func (uc *UseCase) Cerrar(ctx context.Context, compraID int64, usuarioID string) error {
	return uc.txRunner.RunCompra(ctx, func(
		compraRepo repository.CompraRepository,
		_ repository.ProductoRepository,
		proveedorRepo repository.ProveedorRepository,
		movRepo repository.MovimientoRepository,
		audRepo repository.AuditoriaRepository,
	) error {
		compra, err := compraRepo.GetByIDForUpdate(compraID)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		if compra.Estado != entity.CompraAbierta {
			return domain.ErrDocumentoCerrado
		}

		if compra.TipoPago == entity.PagoCredito {
			proveedor, err := proveedorRepo.GetByID(compra.ProveedorID)
			if err != nil {
				return err
			}
			if proveedor == nil {
				return domain.ErrNotFound
			}
			mov := &entity.MovimientoFinanciero{
				Tipo:             entity.MovimientoCuentaPagar,
				DocumentoID:      compraID,
				FechaVencimiento: time.Now().AddDate(0, 0, proveedor.PlazoCreditoDias),
				SaldoPendiente:   compra.TotalBruto,
				Estado:           entity.MovimientoPendiente,
			}
			if err := movRepo.Crear(mov); err != nil {
				return err
			}
		}

		if err := compraRepo.ActualizarEstado(compraID, entity.CompraCerrada); err != nil {
			return err
		}

		return audRepo.Crear(&entity.RegistroAuditoria{
			FechaOperacion: time.Now(),
			Operacion:      entity.OperacionCierreCompra,
			UsuarioID:      usuarioID,
			Motivo:         "cierre de compra",
			DetallesCambio: fmt.Sprintf("op=%s compra=%d tipo_pago=%s total=%s", uuid.New().String(), compraID, compra.TipoPago, compra.TotalBruto.StringFixed(2)),
		})
	})
}

// ListarAbiertas devuelve las compras en estado abierta.
func (uc *UseCase) ListarAbiertas(ctx context.Context) ([]dto.CompraResumenResponse, error) {
	filas, err := uc.compraRepo.ListarAbiertas()
	if err != nil {
		return nil, err
	}
	return toCompraResumenes(filas), nil
}

// Historial devuelve las compras cerradas, más reciente primero.
func (uc *UseCase) Historial(ctx context.Context) ([]dto.CompraResumenResponse, error) {
	filas, err := uc.compraRepo.ListarCerradas()
	if err != nil {
		return nil, err
	}
	return toCompraResumenes(filas), nil
}

// Detalle devuelve la cabecera y las líneas de una compra.
func (uc *UseCase) Detalle(ctx context.Context, compraID int64) (*dto.CompraDetalladaResponse, error) {
	compra, err := uc.compraRepo.GetByID(compraID)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, domain.ErrNotFound
	}
	proveedor, err := uc.proveedorRepo.GetByID(compra.ProveedorID)
	if err != nil {
		return nil, err
	}
	lineas, err := uc.compraRepo.GetDetalles(compraID)
	if err != nil {
		return nil, err
	}

	resumen := dto.CompraResumenResponse{
		CompraID:        compra.ID,
		ProveedorID:     compra.ProveedorID,
		NumeroDocumento: compra.NumeroDocumento,
		TipoPago:        compra.TipoPago,
		Fecha:           compra.FechaCompra.Format(formatoFecha),
		TotalNeto:       compra.TotalNeto,
		TotalImpuestos:  compra.TotalImpuestos,
		TotalBruto:      compra.TotalBruto,
		Estado:          compra.Estado,
	}
	if proveedor != nil {
		resumen.Proveedor = proveedor.RazonSocial
	}

	detalles := make([]dto.DetalleCompraResponse, 0, len(lineas))
	for _, l := range lineas {
		detalles = append(detalles, dto.DetalleCompraResponse{
			ProductoCodigo: l.ProductoCodigo,
			Producto:       l.ProductoNombre,
			Cantidad:       l.Cantidad,
			PrecioCosto:    l.PrecioCosto,
			DescuentoLinea: l.DescuentoLinea,
			ImpuestosLinea: l.ImpuestosLinea,
		})
	}
	return &dto.CompraDetalladaResponse{Compra: resumen, Detalles: detalles}, nil
}

func toCompraResumenes(filas []repository.CompraResumen) []dto.CompraResumenResponse {
	out := make([]dto.CompraResumenResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.CompraResumenResponse{
			CompraID:        f.CompraID,
			ProveedorID:     f.ProveedorID,
			Proveedor:       f.ProveedorNombre,
			NumeroDocumento: f.NumeroDocumento,
			TipoPago:        f.TipoPago,
			Fecha:           f.FechaCompra.Format(formatoFecha),
			TotalNeto:       f.TotalNeto,
			TotalImpuestos:  f.TotalImpuestos,
			TotalBruto:      f.TotalBruto,
			Estado:          f.Estado,
		})
	}
	return out
}
