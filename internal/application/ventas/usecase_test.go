package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
	"github.com/jcsalazar/punto-venta-api/internal/application/ventas"
	"github.com/jcsalazar/punto-venta-api/internal/domain"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
	"github.com/jcsalazar/punto-venta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	ventas   map[int64]*entity.Venta
	detalles []entity.DetalleVenta
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{ventas: make(map[int64]*entity.Venta)}
}

func (f *fakeVentaRepo) CrearCabecera(v *entity.Venta) error {
	v.ID = int64(len(f.ventas) + 1)
	copia := *v
	f.ventas[v.ID] = &copia
	return nil
}

func (f *fakeVentaRepo) GetByID(id int64) (*entity.Venta, error) {
	v, ok := f.ventas[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (f *fakeVentaRepo) GetByIDForUpdate(id int64) (*entity.Venta, error) {
	return f.GetByID(id)
}

func (f *fakeVentaRepo) AgregarDetalle(d *entity.DetalleVenta) error {
	f.detalles = append(f.detalles, *d)
	return nil
}

func (f *fakeVentaRepo) ActualizarTotales(id int64, neto, impuestos, bruto decimal.Decimal) (bool, error) {
	v, ok := f.ventas[id]
	if !ok || v.EstadoPago != entity.VentaAbierta {
		return false, nil
	}
	v.TotalNeto, v.TotalImpuestos, v.TotalBruto = neto, impuestos, bruto
	return true, nil
}

func (f *fakeVentaRepo) ActualizarEstado(id int64, estado string) error {
	f.ventas[id].EstadoPago = estado
	return nil
}

func (f *fakeVentaRepo) ListarAbiertas() ([]repository.VentaResumen, error)   { return nil, nil }
func (f *fakeVentaRepo) ListarLiquidadas() ([]repository.VentaResumen, error) { return nil, nil }
func (f *fakeVentaRepo) GetDetalles(int64) ([]repository.DetalleVentaLinea, error) {
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

// DescontarStock replica el decremento condicional del repo real: si la
// cantidad no alcanza, no muta nada y devuelve false.
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

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Crear(*entity.Cliente) error { return nil }

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeClienteRepo) Listar() ([]*entity.Cliente, error)       { return nil, nil }
func (f *fakeClienteRepo) Actualizar(*entity.Cliente) (bool, error) { return false, nil }

type fakeMovimientoRepo struct {
	saldoCliente decimal.Decimal
	movimientos  []*entity.MovimientoFinanciero
}

func (f *fakeMovimientoRepo) Crear(m *entity.MovimientoFinanciero) error {
	m.ID = int64(len(f.movimientos) + 1)
	f.movimientos = append(f.movimientos, m)
	return nil
}

func (f *fakeMovimientoRepo) ListarPendientes() ([]repository.MovimientoVista, error) {
	return nil, nil
}

func (f *fakeMovimientoRepo) GetPorDocumentoForUpdate(tipo string, documentoID int64) (*entity.MovimientoFinanciero, error) {
	for _, m := range f.movimientos {
		if m.Tipo == tipo && m.DocumentoID == documentoID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovimientoRepo) ActualizarSaldo(id int64, saldo decimal.Decimal, estado string) error {
	for _, m := range f.movimientos {
		if m.ID == id {
			m.SaldoPendiente = saldo
			m.Estado = estado
		}
	}
	return nil
}

func (f *fakeMovimientoRepo) SaldoPendienteCliente(string) (decimal.Decimal, error) {
	return f.saldoCliente, nil
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

// fakeTxRunner invoca el callback con los fakes; no hay transacción real.
type fakeTxRunner struct {
	ventaRepo    *fakeVentaRepo
	productoRepo *fakeProductoRepo
	clienteRepo  *fakeClienteRepo
	movRepo      *fakeMovimientoRepo
	audRepo      *fakeAuditoriaRepo
}

func (f *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	repository.VentaRepository,
	repository.ProductoRepository,
	repository.ClienteRepository,
	repository.MovimientoRepository,
	repository.AuditoriaRepository,
) error) error {
	return fn(f.ventaRepo, f.productoRepo, f.clienteRepo, f.movRepo, f.audRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type escenario struct {
	uc  *ventas.UseCase
	tx  *fakeTxRunner
	ctx context.Context
}

func nuevoEscenario() *escenario {
	tx := &fakeTxRunner{
		ventaRepo:    newFakeVentaRepo(),
		productoRepo: &fakeProductoRepo{stock: make(map[string]int64)},
		clienteRepo:  &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)},
		movRepo:      &fakeMovimientoRepo{saldoCliente: decimal.Zero},
		audRepo:      &fakeAuditoriaRepo{},
	}
	uc := ventas.NewUseCase(tx, tx.ventaRepo, tx.clienteRepo, ventas.CreditoConfig{PlazoDias: 15})
	return &escenario{uc: uc, tx: tx, ctx: context.Background()}
}

func (e *escenario) conCliente(id, tipo string, limite float64) {
	e.tx.clienteRepo.clientes[id] = &entity.Cliente{
		ID:            id,
		Nombre:        "Cliente",
		Apellidos:     "Prueba",
		Tipo:          tipo,
		LimiteCredito: decimal.NewFromFloat(limite),
	}
}

func (e *escenario) conProducto(codigo string, stock int64) {
	e.tx.productoRepo.stock[codigo] = stock
}

// ventaAbierta crea una venta abierta con los totales ya fijados.
func (e *escenario) ventaAbierta(t *testing.T, clienteID string, neto, impuestos float64) int64 {
	t.Helper()
	out, err := e.uc.CrearCabecera(e.ctx, "vendedor-1", dto.CrearVentaRequest{ClienteID: clienteID})
	require.NoError(t, err)
	require.NoError(t, e.uc.ActualizarTotales(e.ctx, out.VentaID, dto.ActualizarTotalesRequest{
		TotalNeto:      decimal.NewFromFloat(neto),
		TotalImpuestos: decimal.NewFromFloat(impuestos),
	}))
	return out.VentaID
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// AgregarDetalle
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregarDetalle_DescuentaStock(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	e.conProducto("P-001", 10)
	ventaID := e.ventaAbierta(t, "C1", 0, 0)

	err := e.uc.AgregarDetalle(e.ctx, ventaID, dto.AgregarDetalleVentaRequest{
		ProductoCodigo: "P-001",
		Cantidad:       3,
		PrecioVenta:    dec(5.00),
	})
	require.NoError(t, err)

	assert.Len(t, e.tx.ventaRepo.detalles, 1)
	assert.Equal(t, int64(7), e.tx.productoRepo.stock["P-001"],
		"el stock debe bajar exactamente la cantidad vendida")
}

// Cada llamada inserta una línea nueva: repetir la petición duplica la línea
// y descuenta stock dos veces (la operación no es idempotente).
func TestAgregarDetalle_NoEsIdempotente(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	e.conProducto("P-001", 10)
	ventaID := e.ventaAbierta(t, "C1", 0, 0)

	in := dto.AgregarDetalleVentaRequest{ProductoCodigo: "P-001", Cantidad: 2, PrecioVenta: dec(5.00)}
	require.NoError(t, e.uc.AgregarDetalle(e.ctx, ventaID, in))
	require.NoError(t, e.uc.AgregarDetalle(e.ctx, ventaID, in))

	assert.Len(t, e.tx.ventaRepo.detalles, 2, "dos llamadas deben insertar dos líneas")
	assert.Equal(t, int64(6), e.tx.productoRepo.stock["P-001"])
}

func TestAgregarDetalle_StockInsuficiente(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	e.conProducto("P-001", 2)
	ventaID := e.ventaAbierta(t, "C1", 0, 0)

	err := e.uc.AgregarDetalle(e.ctx, ventaID, dto.AgregarDetalleVentaRequest{
		ProductoCodigo: "P-001",
		Cantidad:       5,
		PrecioVenta:    dec(5.00),
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.Empty(t, e.tx.ventaRepo.detalles, "la línea no debe insertarse si el stock no alcanza")
	assert.Equal(t, int64(2), e.tx.productoRepo.stock["P-001"],
		"el stock no debe mutarse: nunca queda negativo")
}

func TestAgregarDetalle_VentaCerrada(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	e.conProducto("P-001", 10)
	ventaID := e.ventaAbierta(t, "C1", 20.00, 2.40)

	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago:      entity.PagoContado,
		MontoRecibido: dec(25.00),
	})
	require.NoError(t, err)

	err = e.uc.AgregarDetalle(e.ctx, ventaID, dto.AgregarDetalleVentaRequest{
		ProductoCodigo: "P-001",
		Cantidad:       1,
		PrecioVenta:    dec(5.00),
	})
	assert.ErrorIs(t, err, domain.ErrDocumentoCerrado)
}

func TestAgregarDetalle_CantidadInvalida(t *testing.T) {
	e := nuevoEscenario()
	err := e.uc.AgregarDetalle(e.ctx, 1, dto.AgregarDetalleVentaRequest{
		ProductoCodigo: "P-001",
		Cantidad:       0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout de contado
// ──────────────────────────────────────────────────────────────────────────────

// Neto 20.00 + impuestos 2.40 = bruto 22.40; con 25.00 recibidos el cambio es 2.60.
func TestCheckout_Contado_CalculaCambio(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	ventaID := e.ventaAbierta(t, "C1", 20.00, 2.40)

	out, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago:      entity.PagoContado,
		MontoRecibido: dec(25.00),
	})
	require.NoError(t, err)

	require.NotNil(t, out.Cambio)
	assert.True(t, out.Cambio.Equal(dec(2.60)), "cambio esperado 2.60, obtenido %s", out.Cambio)
	assert.True(t, out.TotalBruto.Equal(dec(22.40)))

	venta, _ := e.tx.ventaRepo.GetByID(ventaID)
	assert.Equal(t, entity.VentaContado, venta.EstadoPago)
	assert.Len(t, e.tx.audRepo.registros, 1, "el checkout debe quedar en auditoría")
}

func TestCheckout_Contado_PagoInsuficiente(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	ventaID := e.ventaAbierta(t, "C1", 20.00, 2.40)

	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago:      entity.PagoContado,
		MontoRecibido: dec(20.00),
	})
	assert.ErrorIs(t, err, domain.ErrPagoInsuficiente)

	venta, _ := e.tx.ventaRepo.GetByID(ventaID)
	assert.Equal(t, entity.VentaAbierta, venta.EstadoPago, "la venta debe seguir abierta")
}

func TestCheckout_YaLiquidada(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	ventaID := e.ventaAbierta(t, "C1", 20.00, 2.40)

	in := dto.CheckoutVentaRequest{TipoPago: entity.PagoContado, MontoRecibido: dec(25.00)}
	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", in)
	require.NoError(t, err)

	_, err = e.uc.Checkout(e.ctx, ventaID, "cajero-1", in)
	assert.ErrorIs(t, err, domain.ErrDocumentoCerrado,
		"liquidar dos veces la misma venta debe rechazarse")
}

func TestCheckout_TipoPagoInvalido(t *testing.T) {
	e := nuevoEscenario()
	_, err := e.uc.Checkout(e.ctx, 1, "cajero-1", dto.CheckoutVentaRequest{TipoPago: "cheque"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout a crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_Credito_GeneraCuentaPorCobrar(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("M1", entity.ClienteMayorista, 500.00)
	ventaID := e.ventaAbierta(t, "M1", 100.00, 12.00)

	out, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago: entity.PagoCredito,
	})
	require.NoError(t, err)
	assert.Nil(t, out.Cambio, "una venta a crédito no tiene cambio")

	venta, _ := e.tx.ventaRepo.GetByID(ventaID)
	assert.Equal(t, entity.VentaCredito, venta.EstadoPago)

	require.Len(t, e.tx.movRepo.movimientos, 1)
	mov := e.tx.movRepo.movimientos[0]
	assert.Equal(t, entity.MovimientoCuentaCobrar, mov.Tipo)
	assert.Equal(t, ventaID, mov.DocumentoID)
	assert.Equal(t, entity.MovimientoPendiente, mov.Estado)
	assert.True(t, mov.SaldoPendiente.Equal(dec(112.00)),
		"la cuenta por cobrar nace con el total bruto como saldo")
}

// Límite 100.00, saldo previo 0, venta de 150.00 → rechazo y la venta sigue abierta.
func TestCheckout_Credito_LimiteExcedido(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("M1", entity.ClienteMayorista, 100.00)
	ventaID := e.ventaAbierta(t, "M1", 150.00, 0)

	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago: entity.PagoCredito,
	})
	assert.ErrorIs(t, err, domain.ErrLimiteCreditoExcedido)

	venta, _ := e.tx.ventaRepo.GetByID(ventaID)
	assert.Equal(t, entity.VentaAbierta, venta.EstadoPago,
		"tras el rechazo la venta queda abierta, sin liquidar")
	assert.Empty(t, e.tx.movRepo.movimientos, "no debe crearse cuenta por cobrar")
}

// El saldo pendiente existente cuenta contra el límite: 60 de saldo + 50 de
// venta exceden un límite de 100.
func TestCheckout_Credito_SaldoPrevioCuentaContraLimite(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("M1", entity.ClienteMayorista, 100.00)
	e.tx.movRepo.saldoCliente = dec(60.00)
	ventaID := e.ventaAbierta(t, "M1", 50.00, 0)

	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago: entity.PagoCredito,
	})
	assert.ErrorIs(t, err, domain.ErrLimiteCreditoExcedido)
}

func TestCheckout_Credito_ClienteNormalRechazado(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	ventaID := e.ventaAbierta(t, "C1", 10.00, 0)

	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{
		TipoPago: entity.PagoCredito,
	})
	assert.ErrorIs(t, err, domain.ErrClienteNoMayorista,
		"solo los mayoristas pueden comprar a crédito")
}

// ──────────────────────────────────────────────────────────────────────────────
// Abonos a la cuenta por cobrar
// ──────────────────────────────────────────────────────────────────────────────

func ventaACredito(t *testing.T, e *escenario, monto float64) int64 {
	t.Helper()
	e.conCliente("M1", entity.ClienteMayorista, 10_000.00)
	ventaID := e.ventaAbierta(t, "M1", monto, 0)
	_, err := e.uc.Checkout(e.ctx, ventaID, "cajero-1", dto.CheckoutVentaRequest{TipoPago: entity.PagoCredito})
	require.NoError(t, err)
	return ventaID
}

func TestPagarVenta_AbonoParcial(t *testing.T) {
	e := nuevoEscenario()
	ventaID := ventaACredito(t, e, 100.00)

	out, err := e.uc.PagarVenta(e.ctx, ventaID, "cajero-1", dto.PagarVentaRequest{Monto: dec(40.00)})
	require.NoError(t, err)

	assert.True(t, out.SaldoPendiente.Equal(dec(60.00)))
	assert.Equal(t, entity.MovimientoParcial, out.Estado)
}

func TestPagarVenta_SaldoCero_QuedaPagado(t *testing.T) {
	e := nuevoEscenario()
	ventaID := ventaACredito(t, e, 100.00)

	out, err := e.uc.PagarVenta(e.ctx, ventaID, "cajero-1", dto.PagarVentaRequest{Monto: dec(100.00)})
	require.NoError(t, err)

	assert.True(t, out.SaldoPendiente.IsZero())
	assert.Equal(t, entity.MovimientoPagado, out.Estado)
}

func TestPagarVenta_MontoMayorAlSaldo(t *testing.T) {
	e := nuevoEscenario()
	ventaID := ventaACredito(t, e, 100.00)

	_, err := e.uc.PagarVenta(e.ctx, ventaID, "cajero-1", dto.PagarVentaRequest{Monto: dec(150.00)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"no se acepta un abono mayor al saldo: el saldo nunca queda negativo")
}

func TestPagarVenta_YaPagada(t *testing.T) {
	e := nuevoEscenario()
	ventaID := ventaACredito(t, e, 100.00)

	_, err := e.uc.PagarVenta(e.ctx, ventaID, "cajero-1", dto.PagarVentaRequest{Monto: dec(100.00)})
	require.NoError(t, err)

	_, err = e.uc.PagarVenta(e.ctx, ventaID, "cajero-1", dto.PagarVentaRequest{Monto: dec(1.00)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPagarVenta_MontoNoPositivo(t *testing.T) {
	e := nuevoEscenario()
	_, err := e.uc.PagarVenta(e.ctx, 1, "cajero-1", dto.PagarVentaRequest{Monto: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

// El bruto no viene del cliente HTTP: se deriva siempre como neto + impuestos.
func TestActualizarTotales_DerivaBruto(t *testing.T) {
	e := nuevoEscenario()
	e.conCliente("C1", entity.ClienteNormal, 0)
	ventaID := e.ventaAbierta(t, "C1", 20.00, 2.40)

	venta, _ := e.tx.ventaRepo.GetByID(ventaID)
	assert.True(t, venta.TotalBruto.Equal(dec(22.40)))
}

func TestActualizarTotales_NegativosRechazados(t *testing.T) {
	e := nuevoEscenario()
	err := e.uc.ActualizarTotales(e.ctx, 1, dto.ActualizarTotalesRequest{
		TotalNeto: dec(-1.00),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarTotales_VentaInexistente(t *testing.T) {
	e := nuevoEscenario()
	err := e.uc.ActualizarTotales(e.ctx, 999, dto.ActualizarTotalesRequest{
		TotalNeto: dec(10.00),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearCabecera_ClienteInexistente(t *testing.T) {
	e := nuevoEscenario()
	_, err := e.uc.CrearCabecera(e.ctx, "vendedor-1", dto.CrearVentaRequest{ClienteID: "NADIE"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
