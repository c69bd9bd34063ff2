package request

// FinalizeRequest closes a bill. transaction_id is the external reference printed on the slip
// (card terminal, UPI app or the cash book number).
type FinalizeRequest struct {
	PaymentMode   string `json:"payment_mode" binding:"required"`
	TransactionID string `json:"transaction_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CashDetails   string `json:"cash_details"`
}
