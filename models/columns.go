package models

// ColumnType classifies a destination column for coercion and for the
// default used when an upload lacks the column entirely.
type ColumnType string

const (
	TypeText    ColumnType = "TEXT"
	TypeReal    ColumnType = "REAL"
	TypeInteger ColumnType = "INTEGER"
)

// ColumnSpec binds one expected export header to its destination
// column. Header text is matched against uploads through
// cleaning.NormalizeHeader, so spacing and encoding variants still hit.
type ColumnSpec struct {
	Header string
	Column string
	Type   ColumnType
}

// Foodstory ships a handful of quirks we must match verbatim: the
// "Rouding amount" typo, a Thai sentence as the voucher-amount header,
// and dotted headers like "INV. No".
var BillColumns = []ColumnSpec{
	{"Payment Date", "payment_date", TypeText},
	{"Payment Time", "payment_time", TypeText},
	{"Time", "time_col", TypeText},
	{"Receipt Number", "receipt_number", TypeText},
	{"POS ID", "pos_id", TypeText},
	{"INV. No", "inv_no", TypeText},
	{"Summary Price", "summary_price", TypeReal},
	{"Discount By Item", "discount_by_item", TypeReal},
	{"Subtotal Bill Discount", "subtotal_bill_discount", TypeReal},
	{"Subtotal Summary Price - Discount By Item", "subtotal_summary_price_minus_discount_by_item", TypeReal},
	{"Service charge", "service_charge", TypeReal},
	{"Non VAT", "non_vat", TypeReal},
	{"Ex. VAT", "ex_vat", TypeReal},
	{"Before Vat Subtotal + Service charge", "before_vat_subtotal_plus_service_charge", TypeReal},
	{"VAT", "vat", TypeReal},
	{"Voucher Amount มูลค่า Voucher มีโอกาสที่จะมากกว่ายอดรวมทั้งบิล ส่วนลดที่ใช้ได้สูงสุดจึงเป็นยอดรวมของบิล", "voucher_amount_desc", TypeReal},
	{"Voucher Discount", "voucher_discount", TypeReal},
	{"Rouding amount", "rounding_amt", TypeReal},
	{"Delivery Fee", "delivery_fee", TypeReal},
	{"Total (Before Vat + VAT + Rouding amount) - Non-VAT amount", "total_final_bill", TypeReal},
	{"Tips", "tips", TypeReal},
	{"Refund", "refund", TypeReal},
	{"Order Type", "order_type", TypeText},
	{"Drawer ID", "drawer_id", TypeText},
	{"Payment Type", "payment_type", TypeText},
	{"Custom Payment Ref.", "custom_payment_ref", TypeText},
	{"Channel", "channel", TypeText},
	{"Table", "table_num", TypeText},
	{"Seat Amount", "seat_amount", TypeInteger},
	{"Customer Name", "customer_name", TypeText},
	{"Remark", "remark", TypeText},
	{"Promotion Code", "promotion_code", TypeText},
	{"Bill open by", "bill_open_by", TypeText},
	{"Bill close by", "bill_close_by", TypeText},
	{"Branch", "branch", TypeText},
}

var BillDetailColumns = []ColumnSpec{
	{"Payment Date", "payment_date", TypeText},
	{"Payment Time", "payment_time", TypeText},
	{"Receipt Number", "receipt_number", TypeText},
	{"INV. No", "inv_no", TypeText},
	{"Drawer ID", "drawer_id", TypeText},
	{"Menu Code", "menu_code", TypeText},
	{"Menu Name", "menu_name", TypeText},
	{"Order Type", "order_type", TypeText},
	{"Quantity", "quantity", TypeReal},
	{"Price per unit", "price_per_unit", TypeReal},
	{"Summary Price", "summary_price", TypeReal},
	{"Discount By Item", "discount_by_item", TypeReal},
	{"Discount By Item Percent", "discount_by_item_percent", TypeReal},
	{"Discounted Price", "discounted_price", TypeReal},
	{"VATable type", "vatable_type", TypeText},
	{"Channel", "channel", TypeText},
	{"Table", "table_num", TypeText},
	{"Customer Name", "customer_name", TypeText},
	{"Phone Number", "phone_number", TypeText},
	{"Payment Type", "payment_type", TypeText},
	{"Custom Payment Ref.", "custom_payment_ref", TypeText},
	{"Remark", "remark", TypeText},
	{"Group", "group_col", TypeText},
	{"Category", "category", TypeText},
	{"Bill open by", "bill_open_by", TypeText},
	{"Bill close by", "bill_close_by", TypeText},
	{"Branch", "branch", TypeText},
	{"Voucher Amount มูลค่า Voucher มีโอกาสที่จะมากกว่ายอดรวมทั้งบิล ส่วนลดที่ใช้ได้สูงสุดจึงเป็นยอดรวมของบิล", "voucher_amount_desc", TypeReal},
	{"Voucher Discount", "voucher_discount", TypeReal},
	{"Rouding amount", "rounding_amt", TypeReal},
}
