package domain

import "time"

// PaymentMethod represents the way a payment was made
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Payment represents a recorded financial transaction tied to a booking's
// completion. Payments are immutable after creation.
type Payment struct {
	ID            int64
	BookingID     int64
	Amount        float64
	PaymentDate   time.Time
	Method        PaymentMethod
	TransactionID string
	Status        PaymentStatus
	CreatedAt     time.Time
}

// RevenueSummary aggregated payment totals over a period
type RevenueSummary struct {
	TotalAmount   float64
	PaymentsCount int
	ByMethod      []MethodRevenue
}

// MethodRevenue payment totals for a single payment method
type MethodRevenue struct {
	Method PaymentMethod
	Amount float64
	Count  int
}
