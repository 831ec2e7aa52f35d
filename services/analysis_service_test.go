package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/foodstory-analytics/models"
)

func seedDetail(t *testing.T, svc *AnalysisService, receipt, menu string, qty float64) {
	t.Helper()
	require.NoError(t, svc.db.Create(&models.BillDetail{
		ReceiptNumber: receipt,
		MenuName:      menu,
		Quantity:      qty,
	}).Error)
}

func TestBillsForAnalysisCombinesDateAndTime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalysisService(db)

	require.NoError(t, db.Create(&models.Bill{
		ReceiptNumber:  "R001",
		PaymentDate:    "2024-01-31",
		PaymentTime:    "14:05:30",
		TotalFinalBill: 350.25,
	}).Error)
	// Repaired-to-sentinel date: must be dropped, not zero-dated.
	require.NoError(t, db.Create(&models.Bill{
		ReceiptNumber: "R002",
		PaymentDate:   "",
		PaymentTime:   "00:00:00",
	}).Error)

	bills, err := svc.BillsForAnalysis()
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "R001", bills[0].ReceiptNumber)
	assert.Equal(t, 2024, bills[0].PaidAt.Year())
	assert.Equal(t, 14, bills[0].PaidAt.Hour())
	assert.Equal(t, 5, bills[0].PaidAt.Minute())
	assert.Equal(t, 350.25, bills[0].TotalFinalBill)
}

func TestBillDetailsForAnalysisDropsEmptyMenuName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalysisService(db)

	seedDetail(t, svc, "R001", "ผัดไทย", 1)
	seedDetail(t, svc, "R001", "", 1)

	details, err := svc.BillDetailsForAnalysis()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "ผัดไทย", details[0].MenuName)
}

func TestBuildBasketsUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalysisService(db)

	// The same item twice on one bill is one membership flag.
	seedDetail(t, svc, "R001", "ผัดไทย", 1)
	seedDetail(t, svc, "R001", "ผัดไทย", 2)
	seedDetail(t, svc, "R001", "Soda", 1)
	seedDetail(t, svc, "R002", "Soda", 1)

	bs, err := svc.BuildBaskets(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"R001", "R002"}, bs.Receipts)
	assert.Equal(t, []string{"Soda", "ผัดไทย"}, bs.Items)
	assert.Equal(t, [][]int{{1, 1}, {1, 0}}, bs.Matrix)
	assert.Equal(t, [][]string{{"Soda", "ผัดไทย"}, {"Soda"}}, bs.Baskets)
}

func TestBuildBasketsExclusions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalysisService(db)

	seedDetail(t, svc, "R001", "ผัดไทย", 1)
	seedDetail(t, svc, "R001", "น้ำเปล่า", 1)
	seedDetail(t, svc, "R002", "น้ำเปล่า", 1)

	bs, err := svc.BuildBaskets([]string{"น้ำเปล่า"})
	require.NoError(t, err)

	// R002 held only the excluded item and drops out entirely.
	assert.Equal(t, []string{"R001"}, bs.Receipts)
	assert.Equal(t, []string{"ผัดไทย"}, bs.Items)
	assert.Equal(t, [][]int{{1}}, bs.Matrix)
}

func TestBuildBasketsIgnoresOrphanReceipts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalysisService(db)

	// Line items whose receipt number defaulted to "" cannot form a
	// transaction.
	seedDetail(t, svc, "", "ผัดไทย", 1)

	bs, err := svc.BuildBaskets(nil)
	require.NoError(t, err)
	assert.Empty(t, bs.Receipts)
	assert.Empty(t, bs.Items)
}
