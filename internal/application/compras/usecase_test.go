package compras_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcsalazar/punto-venta-api/internal/application/compras"
	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompraRepo struct {
	compras  map[int64]*entity.Compra
	detalles []entity.DetalleCompra
}

func newFakeCompraRepo() *fakeCompraRepo {
	return &fakeCompraRepo{compras: make(map[int64]*entity.Compra)}
}

func (f *fakeCompraRepo) CrearCabecera(c *entity.Compra) error {
	for _, existente := range f.compras {
		if existente.NumeroDocumento == c.NumeroDocumento {
			return domain.ErrDuplicate
		}
	}
	c.ID = int64(len(f.compras) + 1)
	copia := *c
	f.compras[c.ID] = &copia
	return nil
}

func (f *fakeCompraRepo) GetByID(id int64) (*entity.Compra, error) {
	c, ok := f.compras[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeCompraRepo) GetByIDForUpdate(id int64) (*entity.Compra, error) {
	return f.GetByID(id)
}

func (f *fakeCompraRepo) AgregarDetalle(d *entity.DetalleCompra) error {
	f.detalles = append(f.detalles, *d)
	return nil
}

func (f *fakeCompraRepo) ActualizarTotales(id int64, neto, impuestos, bruto decimal.Decimal) (bool, error) {
	c, ok := f.compras[id]
	if !ok || c.Estado != entity.CompraAbierta {
		return false, nil
	}
	c.TotalNeto, c.TotalImpuestos, c.TotalBruto = neto, impuestos, bruto
	return true, nil
}

func (f *fakeCompraRepo) ActualizarEstado(id int64, estado string) error {
	f.compras[id].Estado = estado
	return nil
}

func (f *fakeCompraRepo) ListarAbiertas() ([]repository.CompraResumen, error) {
	return f.listarPorEstado(entity.CompraAbierta), nil
}

func (f *fakeCompraRepo) ListarCerradas() ([]repository.CompraResumen, error) {
	return f.listarPorEstado(entity.CompraCerrada), nil
}

func (f *fakeCompraRepo) listarPorEstado(estado string) []repository.CompraResumen {
	var out []repository.CompraResumen
	for _, c := range f.compras {
		if c.Estado != estado {
			continue
		}
		out = append(out, repository.CompraResumen{
			CompraID:        c.ID,
			FechaCompra:     c.FechaCompra,
			ProveedorID:     c.ProveedorID,
			ProveedorNombre: "Proveedor Prueba",
			NumeroDocumento: c.NumeroDocumento,
			TipoPago:        c.TipoPago,
			Estado:          c.Estado,
			TotalNeto:       c.TotalNeto,
			TotalImpuestos:  c.TotalImpuestos,
			TotalBruto:      c.TotalBruto,
		})
	}
	return out
}
func (f *fakeCompraRepo) GetDetalles(int64) ([]repository.DetalleCompraLinea, error) {
	return nil, nil
}

type fakeProductoRepo struct {
	stock map[string]int64
}

func (f *fakeProductoRepo) Crear(*entity.Producto) error { return nil }

func (f *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	if _, ok := f.stock[codigo]; !ok {
		return nil, nil
	}
	return &entity.Producto{Codigo: codigo, StockActual: f.stock[codigo]}, nil
}

func (f *fakeProductoRepo) Listar() ([]repository.ProductoVista, error)    { return nil, nil }
func (f *fakeProductoRepo) Actualizar(*entity.Producto) (bool, error)      { return false, nil }
func (f *fakeProductoRepo) Buscar(string, int) ([]*entity.Producto, error) { return nil, nil }

func (f *fakeProductoRepo) DescontarStock(codigo string, cantidad int64) (bool, error) {
	if f.stock[codigo] < cantidad {
		return false, nil
	}
	f.stock[codigo] -= cantidad
	return true, nil
}

func (f *fakeProductoRepo) AumentarStock(codigo string, cantidad int64) error {
	f.stock[codigo] += cantidad
	return nil
}

type fakeProveedorRepo struct {
	proveedores map[string]*entity.Proveedor
}

func (f *fakeProveedorRepo) Crear(*entity.Proveedor) error { return nil }

func (f *fakeProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	p, ok := f.proveedores[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProveedorRepo) Listar() ([]*entity.Proveedor, error)       { return nil, nil }
func (f *fakeProveedorRepo) Actualizar(*entity.Proveedor) (bool, error) { return false, nil }

type fakeMovimientoRepo struct {
	movimientos []*entity.MovimientoFinanciero
}

func (f *fakeMovimientoRepo) Crear(m *entity.MovimientoFinanciero) error {
	m.ID = int64(len(f.movimientos) + 1)
	f.movimientos = append(f.movimientos, m)
	return nil
}

func (f *fakeMovimientoRepo) ListarPendientes() ([]repository.MovimientoVista, error) {
	return nil, nil
}

func (f *fakeMovimientoRepo) GetPorDocumentoForUpdate(string, int64) (*entity.MovimientoFinanciero, error) {
	return nil, nil
}

func (f *fakeMovimientoRepo) ActualizarSaldo(int64, decimal.Decimal, string) error { return nil }

func (f *fakeMovimientoRepo) SaldoPendienteCliente(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeAuditoriaRepo struct {
	registros []*entity.RegistroAuditoria
}

func (f *fakeAuditoriaRepo) Crear(r *entity.RegistroAuditoria) error {
	f.registros = append(f.registros, r)
	return nil
}

func (f *fakeAuditoriaRepo) ListarRecientes(int) ([]repository.RegistroAuditoriaVista, error) {
	return nil, nil
}

type fakeTxRunner struct {
	compraRepo    *fakeCompraRepo
	productoRepo  *fakeProductoRepo
	proveedorRepo *fakeProveedorRepo
	movRepo       *fakeMovimientoRepo
	audRepo       *fakeAuditoriaRepo
}

func (f *fakeTxRunner) RunCompra(ctx context.Context, fn func(
	repository.CompraRepository,
	repository.ProductoRepository,
	repository.ProveedorRepository,
	repository.MovimientoRepository,
	repository.AuditoriaRepository,
) error) error {
	return fn(f.compraRepo, f.productoRepo, f.proveedorRepo, f.movRepo, f.audRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type escenario struct {
	uc  *compras.UseCase
	tx  *fakeTxRunner
	ctx context.Context
}

func nuevoEscenario() *escenario {
	tx := &fakeTxRunner{
		compraRepo:    newFakeCompraRepo(),
		productoRepo:  &fakeProductoRepo{stock: make(map[string]int64)},
		proveedorRepo: &fakeProveedorRepo{proveedores: make(map[string]*entity.Proveedor)},
		movRepo:       &fakeMovimientoRepo{},
		audRepo:       &fakeAuditoriaRepo{},
	}
	uc := compras.NewUseCase(tx, tx.compraRepo, tx.proveedorRepo)
	return &escenario{uc: uc, tx: tx, ctx: context.Background()}
}

func (e *escenario) conProveedor(id string, plazoDias int) {
	e.tx.proveedorRepo.proveedores[id] = &entity.Proveedor{
		ID:               id,
		RazonSocial:      "Proveedor Prueba",
		PlazoCreditoDias: plazoDias,
	}
}

func (e *escenario) compraAbierta(t *testing.T, proveedorID, numDoc, tipoPago string) int64 {
	t.Helper()
	out, err := e.uc.CrearCabecera(e.ctx, dto.CrearCompraRequest{
		ProveedorID:     proveedorID,
		NumeroDocumento: numDoc,
		TipoPago:        tipoPago,
	})
	require.NoError(t, err)
	return out.CompraID
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Recorrido completo: abrir, recibir líneas (suman stock), fijar totales, cerrar.
func TestCompra_RecorridoCompleto(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	e.tx.productoRepo.stock["P-001"] = 5
	compraID := e.compraAbierta(t, "PR1", "FAC-001", entity.PagoContado)

	require.NoError(t, e.uc.AgregarDetalle(e.ctx, compraID, dto.AgregarDetalleCompraRequest{
		ProductoCodigo: "P-001",
		Cantidad:       20,
		PrecioCosto:    dec(3.00),
	}))
	assert.Equal(t, int64(25), e.tx.productoRepo.stock["P-001"],
		"recibir la línea debe sumar el stock")

	require.NoError(t, e.uc.ActualizarTotales(e.ctx, compraID, dto.ActualizarTotalesRequest{
		TotalNeto:      dec(60.00),
		TotalImpuestos: dec(7.20),
	}))

	require.NoError(t, e.uc.Cerrar(e.ctx, compraID, "bodeguero-1"))

	compra, _ := e.tx.compraRepo.GetByID(compraID)
	assert.Equal(t, entity.CompraCerrada, compra.Estado)
	assert.True(t, compra.TotalBruto.Equal(dec(67.20)), "bruto derivado como neto + impuestos")
	assert.Empty(t, e.tx.movRepo.movimientos, "una compra de contado no genera cuenta por pagar")
	assert.Len(t, e.tx.audRepo.registros, 1, "el cierre debe quedar en auditoría")
}

func TestCerrar_Credito_GeneraCuentaPorPagar(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	compraID := e.compraAbierta(t, "PR1", "FAC-001", entity.PagoCredito)

	require.NoError(t, e.uc.ActualizarTotales(e.ctx, compraID, dto.ActualizarTotalesRequest{
		TotalNeto: dec(500.00),
	}))
	require.NoError(t, e.uc.Cerrar(e.ctx, compraID, "bodeguero-1"))

	require.Len(t, e.tx.movRepo.movimientos, 1)
	mov := e.tx.movRepo.movimientos[0]
	assert.Equal(t, entity.MovimientoCuentaPagar, mov.Tipo)
	assert.Equal(t, compraID, mov.DocumentoID)
	assert.Equal(t, entity.MovimientoPendiente, mov.Estado)
	assert.True(t, mov.SaldoPendiente.Equal(dec(500.00)))
}

func TestCerrar_CompraYaCerrada(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	compraID := e.compraAbierta(t, "PR1", "FAC-001", entity.PagoContado)

	require.NoError(t, e.uc.Cerrar(e.ctx, compraID, "bodeguero-1"))
	err := e.uc.Cerrar(e.ctx, compraID, "bodeguero-1")
	assert.ErrorIs(t, err, domain.ErrDocumentoCerrado)
}

func TestAgregarDetalle_CompraCerrada(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	e.tx.productoRepo.stock["P-001"] = 0
	compraID := e.compraAbierta(t, "PR1", "FAC-001", entity.PagoContado)
	require.NoError(t, e.uc.Cerrar(e.ctx, compraID, "bodeguero-1"))

	err := e.uc.AgregarDetalle(e.ctx, compraID, dto.AgregarDetalleCompraRequest{
		ProductoCodigo: "P-001",
		Cantidad:       5,
		PrecioCosto:    dec(1.00),
	})
	assert.ErrorIs(t, err, domain.ErrDocumentoCerrado)
	assert.Equal(t, int64(0), e.tx.productoRepo.stock["P-001"], "el stock no debe mutarse")
}

func TestAgregarDetalle_ProductoInexistente(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	compraID := e.compraAbierta(t, "PR1", "FAC-001", entity.PagoContado)

	err := e.uc.AgregarDetalle(e.ctx, compraID, dto.AgregarDetalleCompraRequest{
		ProductoCodigo: "NO-EXISTE",
		Cantidad:       5,
		PrecioCosto:    dec(1.00),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Ida y vuelta de la cabecera: recién abierta aparece en el listado de
// abiertas con el mismo proveedor, número de documento y totales en cero;
// cerrada, desaparece del listado.
func TestCrearCabecera_ApareceEnAbiertas(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	compraID := e.compraAbierta(t, "PR1", "FAC-001", entity.PagoCredito)

	abiertas, err := e.uc.ListarAbiertas(e.ctx)
	require.NoError(t, err)
	require.Len(t, abiertas, 1)

	resumen := abiertas[0]
	assert.Equal(t, compraID, resumen.CompraID)
	assert.Equal(t, "PR1", resumen.ProveedorID)
	assert.Equal(t, "FAC-001", resumen.NumeroDocumento)
	assert.Equal(t, entity.PagoCredito, resumen.TipoPago)
	assert.Equal(t, entity.CompraAbierta, resumen.Estado)
	assert.True(t, resumen.TotalBruto.IsZero(), "la cabecera nace con totales en cero")

	require.NoError(t, e.uc.Cerrar(e.ctx, compraID, "bodeguero-1"))
	abiertas, err = e.uc.ListarAbiertas(e.ctx)
	require.NoError(t, err)
	assert.Empty(t, abiertas)
}

func TestCrearCabecera_NumeroDocumentoDuplicado(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	e.compraAbierta(t, "PR1", "FAC-001", entity.PagoContado)

	_, err := e.uc.CrearCabecera(e.ctx, dto.CrearCompraRequest{
		ProveedorID:     "PR1",
		NumeroDocumento: "FAC-001",
		TipoPago:        entity.PagoContado,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el número de factura del proveedor es único")
}

func TestCrearCabecera_ProveedorInexistente(t *testing.T) {
	e := nuevoEscenario()
	_, err := e.uc.CrearCabecera(e.ctx, dto.CrearCompraRequest{
		ProveedorID:     "NADIE",
		NumeroDocumento: "FAC-001",
		TipoPago:        entity.PagoContado,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearCabecera_TipoPagoInvalido(t *testing.T) {
	e := nuevoEscenario()
	e.conProveedor("PR1", 30)
	_, err := e.uc.CrearCabecera(e.ctx, dto.CrearCompraRequest{
		ProveedorID:     "PR1",
		NumeroDocumento: "FAC-001",
		TipoPago:        "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
