package models

import "time"

// BillDetail is one line item within a bill. ReceiptNumber references
// Bill.ReceiptNumber logically only; the exports contain orphaned line
// items and we keep them.
type BillDetail struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PaymentDate   string `gorm:"type:text" json:"payment_date"`
	PaymentTime   string `gorm:"type:text" json:"payment_time"`
	ReceiptNumber string `gorm:"type:text;not null;default:''" json:"receipt_number"`
	InvNo         string `gorm:"type:text" json:"inv_no"`
	DrawerID      string `gorm:"type:text" json:"drawer_id"`

	// Item info
	MenuCode              string  `gorm:"type:text" json:"menu_code"`
	MenuName              string  `gorm:"type:text;not null;default:''" json:"menu_name"`
	OrderType             string  `gorm:"type:text" json:"order_type"`
	Quantity              float64 `gorm:"type:real;not null;default:0" json:"quantity"`
	PricePerUnit          float64 `gorm:"type:real;not null;default:0" json:"price_per_unit"`
	SummaryPrice          float64 `gorm:"type:real;not null;default:0" json:"summary_price"`
	DiscountByItem        float64 `gorm:"type:real" json:"discount_by_item"`
	DiscountByItemPercent float64 `gorm:"type:real" json:"discount_by_item_percent"`
	DiscountedPrice       float64 `gorm:"type:real;not null;default:0" json:"discounted_price"`
	VatableType           string  `gorm:"type:text" json:"vatable_type"`

	Channel          string `gorm:"type:text" json:"channel"`
	TableNum         string `gorm:"type:text" json:"table_num"`
	CustomerName     string `gorm:"type:text" json:"customer_name"`
	PhoneNumber      string `gorm:"type:text" json:"phone_number"`
	PaymentType      string `gorm:"type:text" json:"payment_type"`
	CustomPaymentRef string `gorm:"type:text" json:"custom_payment_ref"`
	Remark           string `gorm:"type:text" json:"remark"`
	GroupCol         string `gorm:"type:text" json:"group_col"`
	Category         string `gorm:"type:text" json:"category"`
	BillOpenBy       string `gorm:"type:text" json:"bill_open_by"`
	BillCloseBy      string `gorm:"type:text" json:"bill_close_by"`
	Branch           string `gorm:"type:text" json:"branch"`

	VoucherAmountDesc float64 `gorm:"type:real;not null;default:0" json:"voucher_amount_desc"`
	VoucherDiscount   float64 `gorm:"type:real;not null;default:0" json:"voucher_discount"`
	RoundingAmt       float64 `gorm:"type:real" json:"rounding_amt"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
