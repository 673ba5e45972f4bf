package models

import "time"

type TemplateKind string

const (
	KindAgreement TemplateKind = "Agreement"
	KindOffer     TemplateKind = "Offer"
	KindInvoice   TemplateKind = "Invoice"
)

// DocumentTemplate holds placeholder text like {{client_name}} that the
// generator fills from resolved deal/lead/property records.
type DocumentTemplate struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      TemplateKind `json:"kind"`
	Body      string       `json:"body"`
	CreatedAt time.Time    `json:"created_at"`
}
