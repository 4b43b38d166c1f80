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

	"github.com/gopidistributors/billing-api/internal/application/analytics"
	"github.com/gopidistributors/billing-api/internal/application/billing"
	"github.com/gopidistributors/billing-api/internal/application/catalog"
	infrapdf "github.com/gopidistributors/billing-api/internal/infrastructure/pdf"
	"github.com/gopidistributors/billing-api/internal/infrastructure/postgres"
	"github.com/gopidistributors/billing-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/gopidistributors/billing-api/internal/interfaces/http"
	"github.com/gopidistributors/billing-api/pkg/config"
	"github.com/gopidistributors/billing-api/pkg/logger"
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
		Str("home_state", cfg.Company.State).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	seller := billing.SellerInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		City:    cfg.Company.City,
		State:   cfg.Company.State,
		Pincode: cfg.Company.Pincode,
		Phone:   cfg.Company.Phone,
		GSTIN:   cfg.Company.GSTIN,
	}
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator(seller)

	productUC := catalog.NewProductUseCase(productRepo)
	importSvc := catalog.NewImportService(spreadsheet.NewExcelizeParser(), productRepo, log)
	partyUC := billing.NewPartyUseCase(partyRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, partyRepo, productRepo, invoiceRepo,
		pdfGenerator, cfg.Company.State, log,
	)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, partyRepo, pdfGenerator)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Catalog uploads can be a few MB of xlsx.
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		ImportSvc:     importSvc,
		PartyUC:       partyUC,
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
		DashboardUC:   dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
