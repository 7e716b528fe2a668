package models

import "time"

// PaymentMethod enumerates the stored payment method kinds
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
	MethodUPI        PaymentMethod = "UPI"
	MethodPaypal     PaymentMethod = "PAYPAL"
)

// ValidPaymentMethod reports whether m is one of the defined methods
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodUPI, MethodPaypal:
		return true
	}
	return false
}

// PaymentProfile is stored payment metadata only; nothing is ever
// charged through it. At most one profile per owner has IsDefault set.
type PaymentProfile struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Method      PaymentMethod `json:"method" gorm:"not null"`
	LastFour    string        `json:"last_four,omitempty"`
	UpiID       string        `json:"upi_id,omitempty"`
	PaypalEmail string        `json:"paypal_email,omitempty"`
	IsDefault   bool          `json:"is_default" gorm:"not null;default:false"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
