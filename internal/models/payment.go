package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed}

type PaymentMethod string

const (
	MethodCard     PaymentMethod = "Card"
	MethodTransfer PaymentMethod = "Bank Transfer"
	MethodCash     PaymentMethod = "Cash"
)

// Payment is a ledger record. Collection is a mock action: a record is
// appended and a confirmation dispatched, no money moves.
type Payment struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	DealID      string        `json:"deal_id"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}
