// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                     *gin.Engine
	healthController           *controller.HealthController
	statementController        *controller.StatementController
	balanceSheetController     *controller.BalanceSheetController
	invoiceController          *controller.InvoiceController
	bankAccountController      *controller.BankAccountController
	cashEntryController        *controller.CashEntryController
	companyBillController      *controller.CompanyBillController
	buyerBillController        *controller.BuyerBillController
	salaryController           *controller.SalaryController
	otherTransactionController *controller.OtherTransactionController
	otherTypeController        *controller.OtherTypeController
	fiscalYearController       *controller.FiscalYearController
	rateLimiter                *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	statementController *controller.StatementController,
	balanceSheetController *controller.BalanceSheetController,
	invoiceController *controller.InvoiceController,
	bankAccountController *controller.BankAccountController,
	cashEntryController *controller.CashEntryController,
	companyBillController *controller.CompanyBillController,
	buyerBillController *controller.BuyerBillController,
	salaryController *controller.SalaryController,
	otherTransactionController *controller.OtherTransactionController,
	otherTypeController *controller.OtherTypeController,
	fiscalYearController *controller.FiscalYearController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:           healthController,
		statementController:        statementController,
		balanceSheetController:     balanceSheetController,
		invoiceController:          invoiceController,
		bankAccountController:      bankAccountController,
		cashEntryController:        cashEntryController,
		companyBillController:      companyBillController,
		buyerBillController:        buyerBillController,
		salaryController:           salaryController,
		otherTransactionController: otherTransactionController,
		otherTypeController:        otherTypeController,
		fiscalYearController:       fiscalYearController,
		rateLimiter:                rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.Metrics())

	r.setupOperationalRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupOperationalRoutes configures the health check and metrics endpoints.
func (r *Router) setupOperationalRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", middleware.MetricsHandler())
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		if r.statementController != nil {
			v1.GET("/statements", r.statementController.Build)
			v1.GET("/account-statements", r.statementController.BuildAccount)
		}

		if r.balanceSheetController != nil {
			v1.GET("/balance-sheet", r.balanceSheetController.Get)
			v1.POST("/balance-sheet/snapshots", r.balanceSheetController.Snapshot)
		}

		if r.invoiceController != nil {
			invoices := v1.Group("/invoices")
			{
				invoices.POST("/calculate", r.invoiceController.Calculate)
				invoices.POST("", r.invoiceController.Create)
				invoices.GET("", r.invoiceController.List)
				invoices.PUT("/:id", r.invoiceController.Update)
				invoices.DELETE("/:id", r.invoiceController.Delete)
			}
		}

		if r.bankAccountController != nil {
			accounts := v1.Group("/bank-accounts")
			{
				accounts.POST("", r.bankAccountController.Create)
				accounts.GET("", r.bankAccountController.List)
				accounts.PUT("/:id", r.bankAccountController.Update)
				accounts.DELETE("/:id", r.bankAccountController.Delete)
			}
		}

		if r.cashEntryController != nil {
			v1.PUT("/cash-entry", r.cashEntryController.Set)
			v1.GET("/cash-entry", r.cashEntryController.Get)
		}

		if r.companyBillController != nil {
			bills := v1.Group("/company-bills")
			{
				bills.POST("", r.companyBillController.Create)
				bills.GET("", r.companyBillController.List)
				bills.PUT("/:id", r.companyBillController.Update)
				bills.DELETE("/:id", r.companyBillController.Delete)
			}
		}

		if r.buyerBillController != nil {
			bills := v1.Group("/buyer-bills")
			{
				bills.POST("", r.buyerBillController.Create)
				bills.GET("", r.buyerBillController.List)
				bills.PUT("/:id", r.buyerBillController.Update)
				bills.DELETE("/:id", r.buyerBillController.Delete)
			}
		}

		if r.salaryController != nil {
			salaries := v1.Group("/salaries")
			{
				salaries.POST("", r.salaryController.Create)
				salaries.GET("", r.salaryController.List)
				salaries.PUT("/:id", r.salaryController.Update)
				salaries.DELETE("/:id", r.salaryController.Delete)
			}
		}

		if r.otherTransactionController != nil {
			transactions := v1.Group("/other-transactions")
			{
				transactions.POST("", r.otherTransactionController.Create)
				transactions.GET("", r.otherTransactionController.List)
				transactions.PUT("/:id", r.otherTransactionController.Update)
				transactions.DELETE("/:id", r.otherTransactionController.Delete)
			}
		}

		if r.otherTypeController != nil {
			v1.POST("/other-types", r.otherTypeController.Create)
			v1.GET("/other-types", r.otherTypeController.List)
		}

		if r.fiscalYearController != nil {
			v1.GET("/financial-years", r.fiscalYearController.List)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
