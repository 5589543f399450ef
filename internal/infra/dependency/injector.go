// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/config"
	"github.com/ledgerbook/backend/internal/application/usecase/accountstatement"
	"github.com/ledgerbook/backend/internal/application/usecase/balancesheet"
	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/application/usecase/fiscalyear"
	"github.com/ledgerbook/backend/internal/application/usecase/invoice"
	"github.com/ledgerbook/backend/internal/application/usecase/statement"
	"github.com/ledgerbook/backend/internal/infra/server/router"
	"github.com/ledgerbook/backend/internal/integration/cache"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	bankRepo := persistence.NewBankAccountRepository(db)
	cashRepo := persistence.NewCashEntryRepository(db)
	companyBillRepo := persistence.NewCompanyBillRepository(db)
	buyerBillRepo := persistence.NewBuyerBillRepository(db)
	salaryRepo := persistence.NewSalaryRepository(db)
	otherTxnRepo := persistence.NewOtherTransactionRepository(db)
	otherTypeRepo := persistence.NewOtherTypeRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	snapshotRepo := persistence.NewBalanceSheetSnapshotRepository(db)

	// Create the report cache
	reportCache := cache.NewReportCache(redisClient)

	// Create statement use cases
	buildStatementUseCase := statement.NewBuildStatementUseCase(
		bankRepo, cashRepo, companyBillRepo, buyerBillRepo, salaryRepo, otherTxnRepo)
	buildAccountStatementUseCase := accountstatement.NewBuildAccountStatementUseCase(
		invoiceRepo, buyerBillRepo, companyBillRepo, otherTxnRepo)

	// Create balance sheet use cases
	getBalanceSheetUseCase := balancesheet.NewGetBalanceSheetUseCase(
		invoiceRepo, buyerBillRepo, companyBillRepo, salaryRepo, otherTxnRepo, reportCache,
	).WithCacheTTL(cfg.Cache.ReportTTL)
	snapshotBalanceSheetUseCase := balancesheet.NewSnapshotBalanceSheetUseCase(
		invoiceRepo, buyerBillRepo, companyBillRepo, salaryRepo, otherTxnRepo, snapshotRepo)

	// Create invoice use cases
	calculateInvoiceUseCase := invoice.NewCalculateInvoiceUseCase(invoiceRepo)
	createInvoiceUseCase := invoice.NewCreateInvoiceUseCase(invoiceRepo, reportCache)
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	updateInvoiceUseCase := invoice.NewUpdateInvoiceUseCase(invoiceRepo, reportCache)
	deleteInvoiceUseCase := invoice.NewDeleteInvoiceUseCase(invoiceRepo, reportCache)

	// Create banking use cases
	createBankAccountUseCase := banking.NewCreateBankAccountUseCase(bankRepo, reportCache)
	listBankAccountsUseCase := banking.NewListBankAccountsUseCase(bankRepo)
	updateBankAccountUseCase := banking.NewUpdateBankAccountUseCase(bankRepo, reportCache)
	deleteBankAccountUseCase := banking.NewDeleteBankAccountUseCase(bankRepo, reportCache)

	setCashEntryUseCase := banking.NewSetCashEntryUseCase(cashRepo, reportCache)
	getCashEntryUseCase := banking.NewGetCashEntryUseCase(cashRepo)

	createCompanyBillUseCase := banking.NewCreateCompanyBillUseCase(companyBillRepo, bankRepo, reportCache)
	listCompanyBillsUseCase := banking.NewListCompanyBillsUseCase(companyBillRepo)
	updateCompanyBillUseCase := banking.NewUpdateCompanyBillUseCase(companyBillRepo, bankRepo, reportCache)
	deleteCompanyBillUseCase := banking.NewDeleteCompanyBillUseCase(companyBillRepo, reportCache)

	createBuyerBillUseCase := banking.NewCreateBuyerBillUseCase(buyerBillRepo, bankRepo, reportCache)
	listBuyerBillsUseCase := banking.NewListBuyerBillsUseCase(buyerBillRepo)
	updateBuyerBillUseCase := banking.NewUpdateBuyerBillUseCase(buyerBillRepo, bankRepo, reportCache)
	deleteBuyerBillUseCase := banking.NewDeleteBuyerBillUseCase(buyerBillRepo, reportCache)

	createSalaryUseCase := banking.NewCreateSalaryUseCase(salaryRepo, bankRepo, reportCache)
	listSalariesUseCase := banking.NewListSalariesUseCase(salaryRepo)
	updateSalaryUseCase := banking.NewUpdateSalaryUseCase(salaryRepo, bankRepo, reportCache)
	deleteSalaryUseCase := banking.NewDeleteSalaryUseCase(salaryRepo, reportCache)

	createOtherTransactionUseCase := banking.NewCreateOtherTransactionUseCase(otherTxnRepo, bankRepo, reportCache)
	listOtherTransactionsUseCase := banking.NewListOtherTransactionsUseCase(otherTxnRepo)
	updateOtherTransactionUseCase := banking.NewUpdateOtherTransactionUseCase(otherTxnRepo, bankRepo, reportCache)
	deleteOtherTransactionUseCase := banking.NewDeleteOtherTransactionUseCase(otherTxnRepo, reportCache)

	createOtherTypeUseCase := banking.NewCreateOtherTypeUseCase(otherTypeRepo)
	listOtherTypesUseCase := banking.NewListOtherTypesUseCase(otherTypeRepo)

	// Create fiscal year use case
	listFinancialYearsUseCase := fiscalyear.NewListFinancialYearsUseCase()

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient != nil && redisClient.Ping(context.Background()).Err() == nil
		},
	)

	statementController := controller.NewStatementController(
		buildStatementUseCase,
		buildAccountStatementUseCase,
	)

	balanceSheetController := controller.NewBalanceSheetController(
		getBalanceSheetUseCase,
		snapshotBalanceSheetUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		calculateInvoiceUseCase,
		createInvoiceUseCase,
		listInvoicesUseCase,
		updateInvoiceUseCase,
		deleteInvoiceUseCase,
	)

	bankAccountController := controller.NewBankAccountController(
		createBankAccountUseCase,
		listBankAccountsUseCase,
		updateBankAccountUseCase,
		deleteBankAccountUseCase,
	)

	cashEntryController := controller.NewCashEntryController(
		setCashEntryUseCase,
		getCashEntryUseCase,
	)

	companyBillController := controller.NewCompanyBillController(
		createCompanyBillUseCase,
		listCompanyBillsUseCase,
		updateCompanyBillUseCase,
		deleteCompanyBillUseCase,
	)

	buyerBillController := controller.NewBuyerBillController(
		createBuyerBillUseCase,
		listBuyerBillsUseCase,
		updateBuyerBillUseCase,
		deleteBuyerBillUseCase,
	)

	salaryController := controller.NewSalaryController(
		createSalaryUseCase,
		listSalariesUseCase,
		updateSalaryUseCase,
		deleteSalaryUseCase,
	)

	otherTransactionController := controller.NewOtherTransactionController(
		createOtherTransactionUseCase,
		listOtherTransactionsUseCase,
		updateOtherTransactionUseCase,
		deleteOtherTransactionUseCase,
	)

	otherTypeController := controller.NewOtherTypeController(
		createOtherTypeUseCase,
		listOtherTypesUseCase,
	)

	fiscalYearController := controller.NewFiscalYearController(listFinancialYearsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(10000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		statementController,
		balanceSheetController,
		invoiceController,
		bankAccountController,
		cashEntryController,
		companyBillController,
		buyerBillController,
		salaryController,
		otherTransactionController,
		otherTypeController,
		fiscalYearController,
		rateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
