package models

import "time"

// Bill is one imported POS receipt. Columns mirror the Foodstory bills
// export after header mapping; values arrive already cleaned (dates as
// YYYY-MM-DD text, times as HH:MM:SS text).
type Bill struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PaymentDate   string `gorm:"type:text" json:"payment_date"`
	PaymentTime   string `gorm:"type:text" json:"payment_time"`
	TimeCol       string `gorm:"type:text" json:"time_col"`
	ReceiptNumber string `gorm:"type:text;not null;default:''" json:"receipt_number"`
	PosID         string `gorm:"type:text" json:"pos_id"`
	InvNo         string `gorm:"type:text" json:"inv_no"`

	// Monetary breakdown per receipt
	SummaryPrice                            float64 `gorm:"type:real;not null;default:0" json:"summary_price"`
	DiscountByItem                          float64 `gorm:"type:real" json:"discount_by_item"`
	SubtotalBillDiscount                    float64 `gorm:"type:real" json:"subtotal_bill_discount"`
	SubtotalSummaryPriceMinusDiscountByItem float64 `gorm:"type:real" json:"subtotal_summary_price_minus_discount_by_item"`
	ServiceCharge                           float64 `gorm:"type:real" json:"service_charge"`
	NonVat                                  float64 `gorm:"type:real" json:"non_vat"`
	ExVat                                   float64 `gorm:"type:real" json:"ex_vat"`
	BeforeVatSubtotalPlusServiceCharge      float64 `gorm:"type:real" json:"before_vat_subtotal_plus_service_charge"`
	Vat                                     float64 `gorm:"type:real" json:"vat"`
	VoucherAmountDesc                       float64 `gorm:"type:real;not null;default:0" json:"voucher_amount_desc"`
	VoucherDiscount                         float64 `gorm:"type:real;not null;default:0" json:"voucher_discount"`
	RoundingAmt                             float64 `gorm:"type:real" json:"rounding_amt"`
	DeliveryFee                             float64 `gorm:"type:real" json:"delivery_fee"`
	TotalFinalBill                          float64 `gorm:"type:real;not null;default:0" json:"total_final_bill"`
	Tips                                    float64 `gorm:"type:real" json:"tips"`
	Refund                                  float64 `gorm:"type:real" json:"refund"`

	OrderType        string `gorm:"type:text" json:"order_type"`
	DrawerID         string `gorm:"type:text" json:"drawer_id"`
	PaymentType      string `gorm:"type:text" json:"payment_type"`
	CustomPaymentRef string `gorm:"type:text" json:"custom_payment_ref"`
	Channel          string `gorm:"type:text" json:"channel"`
	TableNum         string `gorm:"type:text" json:"table_num"`
	SeatAmount       int    `gorm:"type:integer;not null;default:0" json:"seat_amount"`
	CustomerName     string `gorm:"type:text" json:"customer_name"`
	Remark           string `gorm:"type:text" json:"remark"`
	PromotionCode    string `gorm:"type:text" json:"promotion_code"`
	BillOpenBy       string `gorm:"type:text" json:"bill_open_by"`
	BillCloseBy      string `gorm:"type:text" json:"bill_close_by"`
	Branch           string `gorm:"type:text" json:"branch"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
