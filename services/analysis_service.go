package services

import (
	"sort"
	"time"

	"github.com/yeremiapane/foodstory-analytics/models"
	"gorm.io/gorm"
)

// DefaultExclusions are menu names filtered out of top-menu and basket
// analysis unless the caller overrides them: water, ice, plain rice
// and the soft drinks that appear on nearly every bill and drown the
// interesting co-purchases.
var DefaultExclusions = []string{
	"น้ำเปล่า",
	"น้ำแข็ง",
	"ข้าวเปล่า",
	"Soda",
	"Coca Cola",
	"Diet Coke",
	"Sprite",
}

type AnalysisService struct {
	db *gorm.DB
}

func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// AnalysisBill is one stored bill with its date and time recombined
// into a single timestamp.
type AnalysisBill struct {
	ReceiptNumber  string    `json:"receipt_number"`
	PaidAt         time.Time `json:"paid_at"`
	TotalFinalBill float64   `json:"total_final_bill"`
	SeatAmount     int       `json:"seat_amount"`
	PaymentType    string    `json:"payment_type"`
	Branch         string    `json:"branch"`
}

// BillsForAnalysis projects the bills table into timestamped rows.
// Rows whose stored date or time fails to parse are dropped; the
// import already reduced bad input to the "" sentinel, so dropping
// here is the per-row analogue of the silent-default policy.
func (s *AnalysisService) BillsForAnalysis() ([]AnalysisBill, error) {
	var stored []models.Bill
	if err := s.db.
		Select("payment_date", "payment_time", "receipt_number", "total_final_bill", "seat_amount", "payment_type", "branch").
		Find(&stored).Error; err != nil {
		return nil, err
	}

	out := make([]AnalysisBill, 0, len(stored))
	for _, b := range stored {
		paidAt, err := time.Parse("2006-01-02 15:04:05", b.PaymentDate+" "+b.PaymentTime)
		if err != nil {
			continue
		}
		out = append(out, AnalysisBill{
			ReceiptNumber:  b.ReceiptNumber,
			PaidAt:         paidAt,
			TotalFinalBill: b.TotalFinalBill,
			SeatAmount:     b.SeatAmount,
			PaymentType:    b.PaymentType,
			Branch:         b.Branch,
		})
	}
	return out, nil
}

// AnalysisDetail is one stored line item with the columns the menu and
// basket analyses use.
type AnalysisDetail struct {
	ReceiptNumber   string  `json:"receipt_number"`
	MenuName        string  `json:"menu_name"`
	Quantity        float64 `json:"quantity"`
	PricePerUnit    float64 `json:"price_per_unit"`
	SummaryPrice    float64 `json:"summary_price"`
	DiscountByItem  float64 `json:"discount_by_item"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// BillDetailsForAnalysis projects the line items, dropping rows with
// an empty menu name (defaulted during import, useless for analysis).
func (s *AnalysisService) BillDetailsForAnalysis() ([]AnalysisDetail, error) {
	var out []AnalysisDetail
	err := s.db.Model(&models.BillDetail{}).
		Select("receipt_number", "menu_name", "quantity", "price_per_unit", "summary_price", "discount_by_item", "discounted_price").
		Where("menu_name <> ''").
		Find(&out).Error
	return out, err
}

// BasketSet is the transaction-encoded view of the line items: one
// basket per receipt holding its distinct menu names, plus the 0/1
// membership matrix the association miner consumes.
type BasketSet struct {
	Receipts []string   `json:"receipts"`
	Items    []string   `json:"items"`
	Matrix   [][]int    `json:"matrix"`
	Baskets  [][]string `json:"baskets"`
}

// BuildBaskets reduces each receipt's line items to a set of distinct
// menu names, minus the excluded ones. A bill listing the same item
// twice contributes one membership flag. Receipts whose items are all
// excluded drop out entirely.
func (s *AnalysisService) BuildBaskets(exclude []string) (*BasketSet, error) {
	details, err := s.BillDetailsForAnalysis()
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		if name != "" {
			excluded[name] = true
		}
	}

	byReceipt := make(map[string]map[string]bool)
	for _, d := range details {
		if d.ReceiptNumber == "" || excluded[d.MenuName] {
			continue
		}
		set, ok := byReceipt[d.ReceiptNumber]
		if !ok {
			set = make(map[string]bool)
			byReceipt[d.ReceiptNumber] = set
		}
		set[d.MenuName] = true
	}

	receipts := make([]string, 0, len(byReceipt))
	allItems := make(map[string]bool)
	for receipt, set := range byReceipt {
		receipts = append(receipts, receipt)
		for item := range set {
			allItems[item] = true
		}
	}
	sort.Strings(receipts)

	items := make([]string, 0, len(allItems))
	for item := range allItems {
		items = append(items, item)
	}
	sort.Strings(items)

	bs := &BasketSet{
		Receipts: receipts,
		Items:    items,
		Matrix:   make([][]int, len(receipts)),
		Baskets:  make([][]string, len(receipts)),
	}
	for i, receipt := range receipts {
		set := byReceipt[receipt]
		row := make([]int, len(items))
		basket := make([]string, 0, len(set))
		for j, item := range items {
			if set[item] {
				row[j] = 1
				basket = append(basket, item)
			}
		}
		bs.Matrix[i] = row
		bs.Baskets[i] = basket
	}
	return bs, nil
}
