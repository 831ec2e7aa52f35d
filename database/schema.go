// Package database owns schema setup: GORM auto-migration of the two
// import tables plus the lookup indexes the analysis readers rely on.
package database

import (
	"github.com/yeremiapane/foodstory-analytics/models"
	"github.com/yeremiapane/foodstory-analytics/utils"
	"gorm.io/gorm"
)

// Lookup indexes for the analysis readers. receipt_number joins bills
// to their line items; payment_date drives every trend query;
// menu_name drives top-menu and basket reads.
var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_bills_receipt_number ON bills(receipt_number)",
	"CREATE INDEX IF NOT EXISTS idx_bills_payment_date ON bills(payment_date)",
	"CREATE INDEX IF NOT EXISTS idx_bill_details_receipt_number ON bill_details(receipt_number)",
	"CREATE INDEX IF NOT EXISTS idx_bill_details_menu_name ON bill_details(menu_name)",
}

// Migrate creates or updates the bills and bill_details tables, then
// the indexes. Index failures are logged and skipped; an install
// without them is slower, not broken.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Bill{},
		&models.BillDetail{},
	); err != nil {
		return err
	}

	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating index: %v\nStatement: %s", err, stmt)
			continue
		}
	}
	return nil
}
