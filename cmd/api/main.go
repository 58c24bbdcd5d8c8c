package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/iamungmonita/plants-box-api/internal/application/auth"
	"github.com/iamungmonita/plants-box-api/internal/application/catalog"
	"github.com/iamungmonita/plants-box-api/internal/application/logbook"
	"github.com/iamungmonita/plants-box-api/internal/application/membership"
	"github.com/iamungmonita/plants-box-api/internal/application/sales"
	"github.com/iamungmonita/plants-box-api/internal/application/system"
	"github.com/iamungmonita/plants-box-api/internal/infrastructure/excel"
	"github.com/iamungmonita/plants-box-api/internal/infrastructure/postgres"
	httpRouter "github.com/iamungmonita/plants-box-api/internal/interfaces/http"
	"github.com/iamungmonita/plants-box-api/pkg/config"
	"github.com/iamungmonita/plants-box-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	loginRepo := postgres.NewLoginLogRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	cashCountRepo := postgres.NewCashCountRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, loginRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := catalog.NewProductUseCase(productRepo)
	orderUC := sales.NewOrderUseCase(txRunner, orderRepo, productRepo, membershipRepo, excel.NewOrderExporter(""))
	membershipUC := membership.NewMembershipUseCase(membershipRepo)
	systemUC := system.NewSystemUseCase(roleRepo, expenseRepo, voucherRepo)
	logUC := logbook.NewLogUseCase(cashCountRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		OrderUC:      orderUC,
		MembershipUC: membershipUC,
		SystemUC:     systemUC,
		LogUC:        logUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
