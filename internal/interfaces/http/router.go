package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcsalazar/punto-venta-api/internal/application/auth"
	"github.com/jcsalazar/punto-venta-api/internal/application/catalogo"
	"github.com/jcsalazar/punto-venta-api/internal/application/compras"
	"github.com/jcsalazar/punto-venta-api/internal/application/finanzas"
	"github.com/jcsalazar/punto-venta-api/internal/application/reportes"
	"github.com/jcsalazar/punto-venta-api/internal/application/terceros"
	"github.com/jcsalazar/punto-venta-api/internal/application/usuarios"
	"github.com/jcsalazar/punto-venta-api/internal/application/ventas"
	"github.com/jcsalazar/punto-venta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *catalogo.ProductoUseCase
	CategoriaUC *catalogo.CategoriaUseCase
	ImpuestoUC  *catalogo.ImpuestoUseCase
	DescuentoUC *catalogo.DescuentoUseCase
	ClienteUC   *terceros.ClienteUseCase
	ProveedorUC *terceros.ProveedorUseCase
	VentaUC     *ventas.UseCase
	CompraUC    *compras.UseCase
	UsuarioUC   *usuarios.UseCase
	FinanzasUC  *finanzas.UseCase
	ReporteUC   *reportes.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos (protegido; el ajuste de stock es admin/bodeguero)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/buscar", productoHandler.Buscar)
	productos.Get("/:codigo", productoHandler.Get)
	productos.Put("/:codigo", productoHandler.Actualizar)
	productos.Post("/:codigo/stock", RequireRole(entity.RolAdmin, entity.RolBodeguero), productoHandler.AjustarStock)

	// Categorías (protegido)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Crear)
	categorias.Get("/", categoriaHandler.Listar)

	// Impuestos (protegido)
	impuestos := protected.Group("/impuestos")
	impuestoHandler := NewImpuestoHandler(deps.ImpuestoUC)
	impuestos.Post("/", impuestoHandler.Crear)
	impuestos.Get("/", impuestoHandler.Listar)
	impuestos.Put("/:id", impuestoHandler.Actualizar)
	impuestos.Get("/producto/:codigo", impuestoHandler.DeProducto)
	impuestos.Post("/asociar", impuestoHandler.Asociar)

	// Descuentos (protegido)
	descuentos := protected.Group("/descuentos")
	descuentoHandler := NewDescuentoHandler(deps.DescuentoUC)
	descuentos.Post("/", descuentoHandler.CrearTasa)
	descuentos.Get("/", descuentoHandler.ListarCatalogo)
	descuentos.Put("/:id", descuentoHandler.ActualizarTasa)
	descuentos.Post("/reglas", descuentoHandler.AplicarRegla)
	descuentos.Get("/reglas", descuentoHandler.ListarReglas)
	descuentos.Delete("/reglas/:id", descuentoHandler.EliminarRegla)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Crear)
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.Get)
	clientes.Put("/:id", clienteHandler.Actualizar)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Crear)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id", proveedorHandler.Get)
	proveedores.Put("/:id", proveedorHandler.Actualizar)

	// Ventas (protegido)
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventasGroup.Post("/", ventaHandler.Crear)
	ventasGroup.Get("/", ventaHandler.ListarAbiertas)
	ventasGroup.Get("/historial", ventaHandler.Historial)
	ventasGroup.Post("/:id/detalles", ventaHandler.AgregarDetalle)
	ventasGroup.Put("/:id/totales", ventaHandler.ActualizarTotales)
	ventasGroup.Post("/:id/checkout", ventaHandler.Checkout)
	ventasGroup.Post("/:id/pagos", ventaHandler.Pagar)
	ventasGroup.Get("/:id/factura", ventaHandler.Factura)

	// Compras (protegido)
	comprasGroup := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	comprasGroup.Post("/", compraHandler.Crear)
	comprasGroup.Get("/", compraHandler.ListarAbiertas)
	comprasGroup.Get("/historial", compraHandler.Historial)
	comprasGroup.Post("/:id/detalles", compraHandler.AgregarDetalle)
	comprasGroup.Put("/:id/totales", compraHandler.ActualizarTotales)
	comprasGroup.Post("/:id/cierre", compraHandler.Cerrar)
	comprasGroup.Get("/:id", compraHandler.Detalle)

	// Usuarios y roles (solo admin)
	usuariosGroup := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuariosGroup.Post("/", usuarioHandler.Crear)
	usuariosGroup.Get("/", usuarioHandler.Listar)
	usuariosGroup.Put("/:id", usuarioHandler.Actualizar)

	roles := protected.Group("/roles", RequireRole(entity.RolAdmin))
	roles.Post("/", usuarioHandler.CrearRol)
	roles.Get("/", usuarioHandler.ListarRoles)

	// Movimientos financieros y auditoría
	finanzasHandler := NewFinanzasHandler(deps.FinanzasUC)
	protected.Get("/movimientos", finanzasHandler.MovimientosPendientes)
	protected.Get("/auditoria", RequireRole(entity.RolAdmin), finanzasHandler.AuditoriaReciente)

	// Reportes (protegido)
	reportesGroup := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportesGroup.Get("/mejores-clientes", reporteHandler.MejoresClientes)
	reportesGroup.Get("/top-productos", reporteHandler.TopProductos)
	reportesGroup.Get("/stock-bajo", reporteHandler.StockBajo)
	reportesGroup.Get("/creditos-por-vencer", reporteHandler.CreditosPorVencer)
	reportesGroup.Get("/ventas-por-cobrar", reporteHandler.VentasPorCobrar)
}
