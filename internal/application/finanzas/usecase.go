package finanzas

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

const formatoFechaCorta = "2006-01-02"

// UseCase consultas sobre movimientos financieros y el rastro de auditoría.
type UseCase struct {
	movRepo repository.MovimientoRepository
	audRepo repository.AuditoriaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movRepo repository.MovimientoRepository, audRepo repository.AuditoriaRepository) *UseCase {
	return &UseCase{movRepo: movRepo, audRepo: audRepo}
}

// MovimientosPendientes cuentas por cobrar y por pagar sin liquidar,
// ordenadas por fecha de vencimiento.
func (uc *UseCase) MovimientosPendientes(ctx context.Context) ([]dto.MovimientoResponse, error) {
	filas, err := uc.movRepo.ListarPendientes()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.MovimientoResponse{
			MovimientoID:     f.ID,
			Tipo:             f.Tipo,
			DocumentoID:      f.DocumentoID,
			Contraparte:      f.Contraparte,
			FechaVencimiento: f.FechaVencimiento.Format(formatoFechaCorta),
			SaldoPendiente:   f.SaldoPendiente,
			Estado:           f.Estado,
		})
	}
	return out, nil
}

// AuditoriaReciente últimas entradas del rastro de auditoría, más reciente primero.
func (uc *UseCase) AuditoriaReciente(ctx context.Context) ([]dto.AuditoriaResponse, error) {
	filas, err := uc.audRepo.ListarRecientes(50)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditoriaResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.AuditoriaResponse{
			RegistroID: f.ID,
			Usuario:    f.NombreUsuario,
			Operacion:  f.Operacion,
			Motivo:     f.Motivo,
			Detalle:    f.DetallesCambio,
			Fecha:      f.FechaOperacion.Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}
