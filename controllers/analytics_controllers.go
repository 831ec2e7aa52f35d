package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodstory-analytics/mining"
	"github.com/yeremiapane/foodstory-analytics/models"
	"github.com/yeremiapane/foodstory-analytics/services"
	"github.com/yeremiapane/foodstory-analytics/utils"
	"gorm.io/gorm"
)

// Thai day labels, Monday first, matching the dashboard's weekday
// traffic chart.
var thaiWeekdays = []string{"จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์", "อาทิตย์"}

type AnalyticsController struct {
	DB  *gorm.DB
	svc *services.AnalysisService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db, svc: services.NewAnalysisService(db)}
}

// GetOverview returns the headline numbers the dashboard shows above
// the charts.
func (ac *AnalyticsController) GetOverview(c *gin.Context) {
	var stats struct {
		TotalRevenue          float64 `json:"total_revenue"`
		TotalRevenueFormatted string  `json:"total_revenue_formatted"`
		BillCount             int64   `json:"bill_count"`
		AveragePerBill        float64 `json:"average_per_bill"`
		DistinctMenuCount     int64   `json:"distinct_menu_count"`
		FirstDate             string  `json:"first_date"`
		LastDate              string  `json:"last_date"`
	}

	ac.DB.Model(&models.Bill{}).Count(&stats.BillCount)
	ac.DB.Model(&models.Bill{}).
		Select("COALESCE(SUM(total_final_bill), 0)").Row().Scan(&stats.TotalRevenue)
	ac.DB.Model(&models.BillDetail{}).
		Where("menu_name <> ''").Distinct("menu_name").Count(&stats.DistinctMenuCount)
	ac.DB.Model(&models.Bill{}).Where("payment_date <> ''").
		Select("COALESCE(MIN(payment_date), ''), COALESCE(MAX(payment_date), '')").
		Row().Scan(&stats.FirstDate, &stats.LastDate)

	if stats.BillCount > 0 {
		stats.AveragePerBill = stats.TotalRevenue / float64(stats.BillCount)
	}
	stats.TotalRevenueFormatted = utils.FormatCurrencyTHB(stats.TotalRevenue)

	utils.RespondJSON(c, http.StatusOK, "Analytics overview", stats)
}

// GetDailyRevenue returns revenue summed per calendar date, ascending.
func (ac *AnalyticsController) GetDailyRevenue(c *gin.Context) {
	var rows []struct {
		Date    string  `json:"date"`
		Revenue float64 `json:"revenue"`
	}
	err := ac.DB.Model(&models.Bill{}).
		Select("payment_date AS date, COALESCE(SUM(total_final_bill), 0) AS revenue").
		Where("payment_date <> ''").
		Group("payment_date").
		Order("payment_date ASC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily revenue trend", rows)
}

// GetDailyBills returns the bill count per calendar date with every
// date between the first and last filled in, so quiet days chart as
// zero instead of disappearing.
func (ac *AnalyticsController) GetDailyBills(c *gin.Context) {
	var rows []struct {
		Date  string
		Bills int64
	}
	err := ac.DB.Model(&models.Bill{}).
		Select("payment_date AS date, COUNT(*) AS bills").
		Where("payment_date <> ''").
		Group("payment_date").
		Order("payment_date ASC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type dayCount struct {
		Date  string `json:"date"`
		Bills int64  `json:"bills"`
	}
	if len(rows) == 0 {
		utils.RespondJSON(c, http.StatusOK, "Daily bill counts", []dayCount{})
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Date] = r.Bills
	}

	first, errFirst := time.Parse("2006-01-02", rows[0].Date)
	last, errLast := time.Parse("2006-01-02", rows[len(rows)-1].Date)
	if errFirst != nil || errLast != nil {
		// Stored dates are repaired on import; anything else means a
		// hand-edited store. Serve the sparse series rather than fail.
		sparse := make([]dayCount, 0, len(rows))
		for _, r := range rows {
			sparse = append(sparse, dayCount{Date: r.Date, Bills: r.Bills})
		}
		utils.RespondJSON(c, http.StatusOK, "Daily bill counts", sparse)
		return
	}

	var filled []dayCount
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		filled = append(filled, dayCount{Date: key, Bills: counts[key]})
	}
	utils.RespondJSON(c, http.StatusOK, "Daily bill counts", filled)
}

// GetWeekdayTraffic returns the average number of bills per weekday:
// bills seen on that weekday divided by the number of distinct dates
// of that weekday, labeled with Thai day names, Monday first.
func (ac *AnalyticsController) GetWeekdayTraffic(c *gin.Context) {
	bills, err := ac.svc.BillsForAnalysis()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	billCount := make([]int64, 7)
	dates := make([]map[string]bool, 7)
	for i := range dates {
		dates[i] = make(map[string]bool)
	}
	for _, b := range bills {
		// time.Weekday is Sunday=0; shift to Monday=0
		idx := (int(b.PaidAt.Weekday()) + 6) % 7
		billCount[idx]++
		dates[idx][b.PaidAt.Format("2006-01-02")] = true
	}

	type weekdayAvg struct {
		Weekday      string  `json:"weekday"`
		AverageBills float64 `json:"average_bills"`
	}
	out := make([]weekdayAvg, 7)
	for i, label := range thaiWeekdays {
		avg := 0.0
		if n := len(dates[i]); n > 0 {
			avg = float64(billCount[i]) / float64(n)
		}
		out[i] = weekdayAvg{Weekday: label, AverageBills: avg}
	}
	utils.RespondJSON(c, http.StatusOK, "Average bills per weekday", out)
}

// GetHourlyTraffic returns the bill count per hour of day, hours 0-23
// all present.
func (ac *AnalyticsController) GetHourlyTraffic(c *gin.Context) {
	bills, err := ac.svc.BillsForAnalysis()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	counts := make([]int64, 24)
	for _, b := range bills {
		counts[b.PaidAt.Hour()]++
	}

	type hourCount struct {
		Hour  int   `json:"hour"`
		Bills int64 `json:"bills"`
	}
	out := make([]hourCount, 24)
	for h := range out {
		out[h] = hourCount{Hour: h, Bills: counts[h]}
	}
	utils.RespondJSON(c, http.StatusOK, "Bills per hour", out)
}

// GetRevenueByPaymentType returns revenue summed per payment channel.
func (ac *AnalyticsController) GetRevenueByPaymentType(c *gin.Context) {
	var rows []struct {
		PaymentType string  `json:"payment_type"`
		Revenue     float64 `json:"revenue"`
	}
	err := ac.DB.Model(&models.Bill{}).
		Select("payment_type, COALESCE(SUM(total_final_bill), 0) AS revenue").
		Group("payment_type").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Revenue by payment type", rows)
}

// GetRevenueByBranch returns revenue per branch. Exports from a
// single-branch install leave branch empty everywhere, which comes
// back as an empty list.
func (ac *AnalyticsController) GetRevenueByBranch(c *gin.Context) {
	var rows []struct {
		Branch  string  `json:"branch"`
		Revenue float64 `json:"revenue"`
	}
	err := ac.DB.Model(&models.Bill{}).
		Select("branch, COALESCE(SUM(total_final_bill), 0) AS revenue").
		Where("branch <> ''").
		Group("branch").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Revenue by branch", rows)
}

// GetTopMenus returns the top N menu items by summed quantity
// (?by=quantity, the default) or summed revenue (?by=revenue),
// after exclusions.
func (ac *AnalyticsController) GetTopMenus(c *gin.Context) {
	byRevenue := c.Query("by") == "revenue"
	limit := 10
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	excluded := exclusionSet(c)

	details, err := ac.svc.BillDetailsForAnalysis()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type menuTotal struct {
		MenuName string  `json:"menu_name"`
		Quantity float64 `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}
	totals := make(map[string]*menuTotal)
	for _, d := range details {
		if excluded[d.MenuName] {
			continue
		}
		t, ok := totals[d.MenuName]
		if !ok {
			t = &menuTotal{MenuName: d.MenuName}
			totals[d.MenuName] = t
		}
		t.Quantity += d.Quantity
		t.Revenue += d.SummaryPrice
	}

	out := make([]menuTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if byRevenue {
			if out[i].Revenue != out[j].Revenue {
				return out[i].Revenue > out[j].Revenue
			}
		} else if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].MenuName < out[j].MenuName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	utils.RespondJSON(c, http.StatusOK, "Top menus", out)
}

// GetBaskets returns the per-receipt basket sets and the 0/1
// membership matrix fed to the association miner.
func (ac *AnalyticsController) GetBaskets(c *gin.Context) {
	baskets, err := ac.svc.BuildBaskets(exclusionList(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Basket membership matrix", baskets)
}

// GetAssociations mines association rules from the baskets. Too few
// distinct items or no rule clearing the thresholds is an
// informational empty result, not an error.
func (ac *AnalyticsController) GetAssociations(c *gin.Context) {
	minSupport := mining.DefaultMinSupport
	if v, err := strconv.ParseFloat(c.Query("min_support"), 64); err == nil && v > 0 && v <= 1 {
		minSupport = v
	}
	minConfidence := mining.DefaultMinConfidence
	if v, err := strconv.ParseFloat(c.Query("min_confidence"), 64); err == nil && v > 0 && v <= 1 {
		minConfidence = v
	}
	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}

	baskets, err := ac.svc.BuildBaskets(exclusionList(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(baskets.Items) < 2 {
		utils.RespondJSON(c, http.StatusOK, "Not enough distinct items to mine associations", gin.H{
			"itemsets": []mining.Itemset{},
			"rules":    []mining.Rule{},
		})
		return
	}

	itemsets := mining.Apriori(baskets.Baskets, minSupport)
	rules := mining.Rules(itemsets, minConfidence)
	if len(rules) > limit {
		rules = rules[:limit]
	}

	message := "Association rules"
	if len(rules) == 0 {
		message = "No rules found at the given thresholds"
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"min_support":    minSupport,
		"min_confidence": minConfidence,
		"itemsets":       itemsets,
		"rules":          rules,
	})
}

// exclusionList merges ?exclude= (comma separated menu names) with
// the default exclusion list when ?defaults=true.
func exclusionList(c *gin.Context) []string {
	var out []string
	if c.Query("defaults") == "true" {
		out = append(out, services.DefaultExclusions...)
	}
	for _, name := range strings.Split(c.Query("exclude"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func exclusionSet(c *gin.Context) map[string]bool {
	set := make(map[string]bool)
	for _, name := range exclusionList(c) {
		set[name] = true
	}
	return set
}
