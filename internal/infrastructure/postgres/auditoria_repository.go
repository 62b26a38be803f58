package postgres

import (
	"context"
	"fmt"

	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación del puerto AuditoriaRepository sobre PostgreSQL.
// El rastro es append-only: no hay update ni delete.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador de persistencia para auditoría.
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Crear inserta una entrada de auditoría.
func (r *AuditoriaRepo) Crear(reg *entity.RegistroAuditoria) error {
	query := `
		INSERT INTO auditoria (fecha_operacion, operacion, usuario_id, motivo, detalles_cambio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING registro_id`
	err := r.q.QueryRow(context.Background(), query,
		reg.FechaOperacion, reg.Operacion, reg.UsuarioID, reg.Motivo, reg.DetallesCambio,
	).Scan(&reg.ID)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// ListarRecientes devuelve las últimas entradas con el nombre del usuario, más
// reciente primero.
func (r *AuditoriaRepo) ListarRecientes(limit int) ([]repository.RegistroAuditoriaVista, error) {
	query := `
		SELECT a.registro_id, a.fecha_operacion, a.operacion, u.nombre_usuario, a.motivo, a.detalles_cambio
		FROM auditoria a
		JOIN usuarios u ON u.usuario_id = a.usuario_id
		ORDER BY a.fecha_operacion DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()

	var out []repository.RegistroAuditoriaVista
	for rows.Next() {
		var v repository.RegistroAuditoriaVista
		if err := rows.Scan(&v.ID, &v.FechaOperacion, &v.Operacion, &v.NombreUsuario, &v.Motivo, &v.DetallesCambio); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
