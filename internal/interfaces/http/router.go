package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gopidistributors/billing-api/internal/application/analytics"
	"github.com/gopidistributors/billing-api/internal/application/billing"
	"github.com/gopidistributors/billing-api/internal/application/catalog"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC     *catalog.ProductUseCase
	ImportSvc     *catalog.ImportService
	PartyUC       *billing.PartyUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	DashboardUC   *analytics.DashboardUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Products (catalog + bulk import)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	importHandler := NewImportHandler(deps.ImportSvc)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/import", importHandler.Import)
	products.Get("/import/status", importHandler.Status)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Parties
	parties := api.Group("/parties")
	partyHandler := NewPartyHandler(deps.PartyUC)
	parties.Post("/", partyHandler.Create)
	parties.Get("/", partyHandler.List)
	parties.Get("/:id", partyHandler.GetByID)
	parties.Put("/:id", partyHandler.Update)
	parties.Delete("/:id", partyHandler.Delete)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:seq", invoiceHandler.GetBySeq)
	invoices.Get("/:seq/pdf", invoiceHandler.DownloadPDF)
}
