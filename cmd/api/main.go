package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/obrasoft/almoxarifado-api/internal/application/analytics"
	"github.com/obrasoft/almoxarifado-api/internal/application/auth"
	"github.com/obrasoft/almoxarifado-api/internal/application/movement"
	"github.com/obrasoft/almoxarifado-api/internal/application/usecase"
	"github.com/obrasoft/almoxarifado-api/internal/infrastructure/postgres"
	httpRouter "github.com/obrasoft/almoxarifado-api/internal/interfaces/http"
	"github.com/obrasoft/almoxarifado-api/pkg/config"
	"github.com/obrasoft/almoxarifado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	docRepo := postgres.NewMovementDocumentRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	balanceRepo := postgres.NewStockBalanceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := movement.NewRegisterMovementUseCase(txRunner, lotRepo, docRepo, locationRepo, log)
	materialUC := usecase.NewMaterialUseCase(materialRepo, unitRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	workOrderUC := usecase.NewWorkOrderUseCase(workOrderRepo)
	stockUC := usecase.NewStockUseCase(balanceRepo, movementRepo, unitRepo, docRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		MaterialUC:       materialUC,
		ProjectUC:        projectUC,
		LocationUC:       locationUC,
		SupplierUC:       supplierUC,
		WorkOrderUC:      workOrderUC,
		StockUC:          stockUC,
		SettingUC:        settingUC,
		RegisterMovement: registerMovementUC,
		DashboardUC:      dashboardUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
