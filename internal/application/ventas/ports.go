package ventas

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción
// PostgreSQL (Commit si fn retorna nil, Rollback si retorna error).
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		clienteRepo repository.ClienteRepository,
		movRepo repository.MovimientoRepository,
		audRepo repository.AuditoriaRepository,
	) error) error
}
