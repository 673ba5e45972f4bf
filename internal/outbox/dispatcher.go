// Package outbox is the command port for mock side effects. Collecting a
// payment, sending a message or generating a document all end here: the
// aggregation core never depends on any notification mechanism, and the
// default dispatcher only records a confirmation line.
package outbox

import (
	"context"
	"log"
)

type EventKind string

const (
	KindEmail       EventKind = "email"
	KindWhatsApp    EventKind = "whatsapp"
	KindSMS         EventKind = "sms"
	KindCall        EventKind = "call"
	KindPaymentLink EventKind = "payment_link"
	KindDocument    EventKind = "document"
)

type Event struct {
	Kind    EventKind
	To      string
	Subject string
	Body    string
}

type Dispatcher interface {
	Dispatch(ctx context.Context, e Event) error
}

// LogDispatcher is the toast analog: every action resolves to a logged
// confirmation and nothing else.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Dispatch(_ context.Context, e Event) error {
	log.Printf("outbox: %s to %q: %s", e.Kind, e.To, e.Subject)
	return nil
}

// NopDispatcher records events for assertions in tests.
type NopDispatcher struct {
	Events []Event
}

func NewNopDispatcher() *NopDispatcher {
	return &NopDispatcher{}
}

func (d *NopDispatcher) Dispatch(_ context.Context, e Event) error {
	d.Events = append(d.Events, e)
	return nil
}
