package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcsalazar/punto-venta-api/internal/application/compras"
	"github.com/jcsalazar/punto-venta-api/internal/application/ventas"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// Ensure TxRunner implements ventas.TxRunner and compras.TxRunner.
var _ ventas.TxRunner = (*TxRunner)(nil)
var _ compras.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunVenta inicia una transacción, ejecuta fn con los repos del ciclo de venta
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoRepository,
	audRepo repository.AuditoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ventaRepo := NewVentaRepository(tx)
	productoRepo := NewProductoRepository(tx)
	clienteRepo := NewClienteRepository(tx)
	movRepo := NewMovimientoRepository(tx)
	audRepo := NewAuditoriaRepository(tx)

	if err := fn(ventaRepo, productoRepo, clienteRepo, movRepo, audRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompra inicia una transacción con los repos del ciclo de compra.
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	movRepo repository.MovimientoRepository,
	audRepo repository.AuditoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	compraRepo := NewCompraRepository(tx)
	productoRepo := NewProductoRepository(tx)
	proveedorRepo := NewProveedorRepository(tx)
	movRepo := NewMovimientoRepository(tx)
	audRepo := NewAuditoriaRepository(tx)

	if err := fn(compraRepo, productoRepo, proveedorRepo, movRepo, audRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
