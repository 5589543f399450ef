package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.BankAccountModel{},
		&model.CashEntryModel{},
		&model.CompanyBillModel{},
		&model.BuyerBillModel{},
		&model.SalaryModel{},
		&model.OtherTransactionModel{},
		&model.OtherTypeModel{},
		&model.InvoiceModel{},
		&model.BalanceSheetSnapshotModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
