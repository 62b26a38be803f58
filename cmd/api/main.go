package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcsalazar/punto-venta-api/internal/application/auth"
	"github.com/jcsalazar/punto-venta-api/internal/application/catalogo"
	"github.com/jcsalazar/punto-venta-api/internal/application/compras"
	"github.com/jcsalazar/punto-venta-api/internal/application/finanzas"
	"github.com/jcsalazar/punto-venta-api/internal/application/reportes"
	"github.com/jcsalazar/punto-venta-api/internal/application/terceros"
	"github.com/jcsalazar/punto-venta-api/internal/application/usuarios"
	"github.com/jcsalazar/punto-venta-api/internal/application/ventas"
	"github.com/jcsalazar/punto-venta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcsalazar/punto-venta-api/internal/interfaces/http"
	"github.com/jcsalazar/punto-venta-api/pkg/config"
	"github.com/jcsalazar/punto-venta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	impuestoRepo := postgres.NewImpuestoRepository(pool)
	descuentoRepo := postgres.NewDescuentoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := catalogo.NewProductoUseCase(productoRepo)
	categoriaUC := catalogo.NewCategoriaUseCase(categoriaRepo)
	impuestoUC := catalogo.NewImpuestoUseCase(impuestoRepo, productoRepo)
	descuentoUC := catalogo.NewDescuentoUseCase(descuentoRepo)
	clienteUC := terceros.NewClienteUseCase(clienteRepo)
	proveedorUC := terceros.NewProveedorUseCase(proveedorRepo)
	ventaUC := ventas.NewUseCase(txRunner, ventaRepo, clienteRepo, ventas.CreditoConfig{
		PlazoDias: cfg.Reportes.PlazoCreditoVentaDias,
	})
	compraUC := compras.NewUseCase(txRunner, compraRepo, proveedorRepo)
	usuarioUC := usuarios.NewUseCase(usuarioRepo, rolRepo, auditoriaRepo)
	finanzasUC := finanzas.NewUseCase(movimientoRepo, auditoriaRepo)
	reporteUC := reportes.NewUseCase(reporteRepo, reportes.Config{
		PlazoCreditoVentaDias: cfg.Reportes.PlazoCreditoVentaDias,
		AlertaComprasDias:     cfg.Reportes.AlertaComprasDias,
		AlertaVentasDias:      cfg.Reportes.AlertaVentasDias,
	})
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:  productoUC,
		CategoriaUC: categoriaUC,
		ImpuestoUC:  impuestoUC,
		DescuentoUC: descuentoUC,
		ClienteUC:   clienteUC,
		ProveedorUC: proveedorUC,
		VentaUC:     ventaUC,
		CompraUC:    compraUC,
		UsuarioUC:   usuarioUC,
		FinanzasUC:  finanzasUC,
		ReporteUC:   reporteUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
