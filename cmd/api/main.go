package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/catalog"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// repositories puertos de persistencia según el backend elegido en STORAGE.
type repositories struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	orders    repository.OrderRepository
	txRunner  repository.OrderTxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.close()

	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de productos")
	}

	tokens, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de tokens")
	}

	accountUC := auth.NewAccountUseCase(repos.users, tokens)
	companyUC := usecase.NewCompanyUseCase(repos.companies)
	orderUC := usecase.NewOrderUseCase(companyUC, products, repos.orders, repos.txRunner)
	summaryUC := usecase.NewSummaryUseCase(companyUC, repos.orders)
	productUC := usecase.NewProductUseCase(products)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC: accountUC,
		CompanyUC: companyUC,
		OrderUC:   orderUC,
		SummaryUC: summaryUC,
		ProductUC: productUC,
		Tokens:    tokens,
	})

	go func() {
		var err error
		if cfg.HTTP.TLSEnabled() {
			log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando con TLS")
			err = app.ListenTLS(cfg.HTTP.Addr(), cfg.HTTP.CertFile, cfg.HTTP.KeyFile)
		} else {
			err = app.Listen(cfg.HTTP.Addr())
		}
		if err != nil {
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

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.App.Storage == config.StorageMemory {
		store := memory.NewStore()
		return &repositories{
			users:     store.Users(),
			companies: store.Companies(),
			orders:    store.Orders(),
			txRunner:  store,
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &repositories{
		users:     postgres.NewUserRepository(pool),
		companies: postgres.NewCompanyRepository(pool),
		orders:    postgres.NewOrderRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
