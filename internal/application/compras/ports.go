package compras

import (
	"context"

	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción
// PostgreSQL (Commit si fn retorna nil, Rollback si retorna error).
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
		proveedorRepo repository.ProveedorRepository,
		movRepo repository.MovimientoRepository,
		audRepo repository.AuditoriaRepository,
	) error) error
}
