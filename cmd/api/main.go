package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/finca-pro/internal/application/agenda"
	"github.com/tu-usuario/finca-pro/internal/application/analytics"
	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	"github.com/tu-usuario/finca-pro/internal/application/registry"
	"github.com/tu-usuario/finca-pro/internal/domain/repository"
	"github.com/tu-usuario/finca-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/finca-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/finca-pro/internal/interfaces/http"
	"github.com/tu-usuario/finca-pro/pkg/cache"
	"github.com/tu-usuario/finca-pro/pkg/config"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// repos agrupa los puertos de persistencia resueltos según STORE_DRIVER.
type repos struct {
	txRunner     inventory.TxRunner
	supplyRepo   repository.SupplyRepository
	movementRepo repository.MovementRepository
	animalRepo   repository.AnimalRepository
	eventRepo    repository.EventRepository
	cleanup      func()
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := buildRepos(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer r.cleanup()

	// Caché opcional del dashboard; sin REDIS_ADDR la app funciona igual.
	var cacheClient cache.Client
	if cfg.Cache.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.Cache.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("conexión a Redis")
		}
		cacheClient = redisClient
	}

	inventorySvc := inventory.NewService(
		r.txRunner, r.supplyRepo, r.movementRepo, r.animalRepo,
		cfg.Inventory.ExpiryWarningDays,
	)
	animalUC := registry.NewAnimalUseCase(r.animalRepo)
	eventUC := agenda.NewEventUseCase(r.eventRepo)
	dashboardUC := analytics.NewDashboardUseCase(
		r.supplyRepo, r.animalRepo, r.eventRepo,
		cfg.Inventory.ExpiryWarningDays,
		cacheClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second,
	)

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
		InventorySvc: inventorySvc,
		AnimalUC:     animalUC,
		EventUC:      eventUC,
		DashboardUC:  dashboardUC,
		Log:          log,
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

func buildRepos(ctx context.Context, cfg *config.Config) (*repos, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &repos{
			txRunner:     postgres.NewTxRunner(pool),
			supplyRepo:   postgres.NewSupplyRepository(pool),
			movementRepo: postgres.NewMovementRepository(pool),
			animalRepo:   postgres.NewAnimalRepository(pool),
			eventRepo:    postgres.NewEventRepository(pool),
			cleanup:      pool.Close,
		}, nil
	default:
		store := memory.NewStore()
		return &repos{
			txRunner:     memory.NewTxRunner(store),
			supplyRepo:   memory.NewSupplyRepository(store),
			movementRepo: memory.NewMovementRepository(store),
			animalRepo:   memory.NewAnimalRepository(store),
			eventRepo:    memory.NewEventRepository(store),
			cleanup:      func() {},
		}, nil
	}
}
