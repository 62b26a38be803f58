package repository

import (
	"time"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// RegistroAuditoriaVista es una entrada de auditoría con el nombre de usuario resuelto.
type RegistroAuditoriaVista struct {
	ID             int64
	FechaOperacion time.Time
	Operacion      string
	NombreUsuario  string
	Motivo         string
	DetallesCambio string
}

// AuditoriaRepository define el puerto del rastro de auditoría (append-only).
type AuditoriaRepository interface {
	Crear(r *entity.RegistroAuditoria) error
	// ListarRecientes devuelve las últimas entradas (más reciente primero), sin filtros.
	ListarRecientes(limit int) ([]RegistroAuditoriaVista, error)
}
