package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/foodstory-analytics/models"
)

func seedBill(t *testing.T, db *gorm.DB, date, timeStr, receipt string, total float64, paymentType string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Bill{
		PaymentDate:    date,
		PaymentTime:    timeStr,
		ReceiptNumber:  receipt,
		TotalFinalBill: total,
		PaymentType:    paymentType,
	}).Error)
}

func seedBasketDetail(t *testing.T, db *gorm.DB, receipt, menu string, qty, price float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.BillDetail{
		ReceiptNumber: receipt,
		MenuName:      menu,
		Quantity:      qty,
		SummaryPrice:  price,
	}).Error)
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code, decodeResponse(t, w)
}

func TestOverview(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBill(t, db, "2024-01-01", "12:00:00", "R001", 100, "Cash")
	seedBill(t, db, "2024-01-03", "18:30:00", "R002", 300, "QR")
	seedBasketDetail(t, db, "R001", "ผัดไทย", 1, 95)
	seedBasketDetail(t, db, "R002", "ต้มยำกุ้ง", 1, 180)

	code, resp := getJSON(t, r, "/api/analytics/overview")
	assert.Equal(t, http.StatusOK, code)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(400), data["total_revenue"])
	assert.Equal(t, "฿400.00", data["total_revenue_formatted"])
	assert.Equal(t, float64(2), data["bill_count"])
	assert.Equal(t, float64(200), data["average_per_bill"])
	assert.Equal(t, float64(2), data["distinct_menu_count"])
	assert.Equal(t, "2024-01-01", data["first_date"])
	assert.Equal(t, "2024-01-03", data["last_date"])
}

func TestDailyRevenueSkipsEmptyDates(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBill(t, db, "2024-01-01", "12:00:00", "R001", 100, "Cash")
	seedBill(t, db, "2024-01-01", "13:00:00", "R002", 50, "Cash")
	seedBill(t, db, "", "00:00:00", "R003", 999, "Cash")

	code, resp := getJSON(t, r, "/api/analytics/daily-revenue")
	assert.Equal(t, http.StatusOK, code)

	rows := resp["data"].([]interface{})
	require.Len(t, rows, 1)
	day := rows[0].(map[string]interface{})
	assert.Equal(t, "2024-01-01", day["date"])
	assert.Equal(t, float64(150), day["revenue"])
}

func TestDailyBillsZeroFilled(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBill(t, db, "2024-01-01", "12:00:00", "R001", 100, "Cash")
	seedBill(t, db, "2024-01-03", "12:00:00", "R002", 100, "Cash")

	code, resp := getJSON(t, r, "/api/analytics/daily-bills")
	assert.Equal(t, http.StatusOK, code)

	rows := resp["data"].([]interface{})
	require.Len(t, rows, 3)

	middle := rows[1].(map[string]interface{})
	assert.Equal(t, "2024-01-02", middle["date"])
	assert.Equal(t, float64(0), middle["bills"])
}

func TestWeekdayTrafficThaiLabels(t *testing.T) {
	r, db := setupTestRouter(t)
	// 2024-01-01 is a Monday; two Mondays, one with two bills.
	seedBill(t, db, "2024-01-01", "12:00:00", "R001", 100, "Cash")
	seedBill(t, db, "2024-01-01", "13:00:00", "R002", 100, "Cash")
	seedBill(t, db, "2024-01-08", "12:00:00", "R003", 100, "Cash")

	code, resp := getJSON(t, r, "/api/analytics/weekday-traffic")
	assert.Equal(t, http.StatusOK, code)

	rows := resp["data"].([]interface{})
	require.Len(t, rows, 7)

	monday := rows[0].(map[string]interface{})
	assert.Equal(t, "จันทร์", monday["weekday"])
	assert.Equal(t, 1.5, monday["average_bills"])

	sunday := rows[6].(map[string]interface{})
	assert.Equal(t, "อาทิตย์", sunday["weekday"])
	assert.Equal(t, float64(0), sunday["average_bills"])
}

func TestHourlyTrafficAllHoursPresent(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBill(t, db, "2024-01-01", "18:45:00", "R001", 100, "Cash")

	code, resp := getJSON(t, r, "/api/analytics/hourly-traffic")
	assert.Equal(t, http.StatusOK, code)

	rows := resp["data"].([]interface{})
	require.Len(t, rows, 24)

	h18 := rows[18].(map[string]interface{})
	assert.Equal(t, float64(18), h18["hour"])
	assert.Equal(t, float64(1), h18["bills"])
	h0 := rows[0].(map[string]interface{})
	assert.Equal(t, float64(0), h0["bills"])
}

func TestRevenueByPaymentType(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBill(t, db, "2024-01-01", "12:00:00", "R001", 100, "Cash")
	seedBill(t, db, "2024-01-01", "13:00:00", "R002", 300, "QR")
	seedBill(t, db, "2024-01-02", "13:00:00", "R003", 50, "QR")

	code, resp := getJSON(t, r, "/api/analytics/payment-types")
	assert.Equal(t, http.StatusOK, code)

	rows := resp["data"].([]interface{})
	require.Len(t, rows, 2)
	top := rows[0].(map[string]interface{})
	assert.Equal(t, "QR", top["payment_type"])
	assert.Equal(t, float64(350), top["revenue"])
}

func TestRevenueByBranchEmptyWhenAbsent(t *testing.T) {
	r, db := setupTestRouter(t)
	// Single-branch installs export an empty branch column.
	seedBill(t, db, "2024-01-01", "12:00:00", "R001", 100, "Cash")

	code, resp := getJSON(t, r, "/api/analytics/branches")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp["data"])
}

func TestTopMenus(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBasketDetail(t, db, "R001", "ผัดไทย", 3, 285)
	seedBasketDetail(t, db, "R002", "ผัดไทย", 2, 190)
	seedBasketDetail(t, db, "R001", "ต้มยำกุ้ง", 1, 180)
	seedBasketDetail(t, db, "R002", "น้ำเปล่า", 10, 100)

	code, resp := getJSON(t, r, "/api/analytics/top-menus?limit=2&defaults=true")
	assert.Equal(t, http.StatusOK, code)

	rows := resp["data"].([]interface{})
	require.Len(t, rows, 2)

	first := rows[0].(map[string]interface{})
	assert.Equal(t, "ผัดไทย", first["menu_name"])
	assert.Equal(t, float64(5), first["quantity"])
	assert.Equal(t, float64(475), first["revenue"])

	// By revenue the soup overtakes nothing here, but ordering flips
	// when quantities disagree with revenue.
	code, resp = getJSON(t, r, "/api/analytics/top-menus?by=revenue&limit=1&defaults=true")
	assert.Equal(t, http.StatusOK, code)
	rows = resp["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "ผัดไทย", rows[0].(map[string]interface{})["menu_name"])
}

func TestBasketsEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBasketDetail(t, db, "R001", "ผัดไทย", 1, 95)
	seedBasketDetail(t, db, "R001", "ผัดไทย", 1, 95)
	seedBasketDetail(t, db, "R001", "Soda", 1, 25)

	code, resp := getJSON(t, r, "/api/analytics/baskets")
	assert.Equal(t, http.StatusOK, code)

	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Equal(t, []interface{}{"Soda", "ผัดไทย"}, items)

	matrix := data["matrix"].([]interface{})
	require.Len(t, matrix, 1)
	assert.Equal(t, []interface{}{float64(1), float64(1)}, matrix[0].([]interface{}))
}

func TestAssociationsNotEnoughItems(t *testing.T) {
	r, db := setupTestRouter(t)
	seedBasketDetail(t, db, "R001", "ผัดไทย", 1, 95)

	code, resp := getJSON(t, r, "/api/analytics/associations")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Not enough distinct items to mine associations", resp["message"])
}

func TestAssociationsFindsRules(t *testing.T) {
	r, db := setupTestRouter(t)
	// Four of five baskets pair the noodles with the soup.
	for i, receipt := range []string{"R001", "R002", "R003", "R004", "R005"} {
		seedBasketDetail(t, db, receipt, "ผัดไทย", 1, 95)
		if i < 4 {
			seedBasketDetail(t, db, receipt, "ต้มยำกุ้ง", 1, 180)
		}
	}

	code, resp := getJSON(t, r, "/api/analytics/associations?min_support=0.5&min_confidence=0.7")
	assert.Equal(t, http.StatusOK, code)

	data := resp["data"].(map[string]interface{})
	rules := data["rules"].([]interface{})
	require.NotEmpty(t, rules)

	top := rules[0].(map[string]interface{})
	assert.Equal(t, []interface{}{"ต้มยำกุ้ง"}, top["antecedents"])
	assert.Equal(t, []interface{}{"ผัดไทย"}, top["consequents"])
	assert.Equal(t, float64(0.8), top["support"])
	assert.Equal(t, float64(1), top["confidence"])
	assert.Equal(t, float64(1), top["lift"])
}
