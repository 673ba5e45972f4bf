package models

import "time"

type MessageChannel string

const (
	ChannelEmail    MessageChannel = "Email"
	ChannelWhatsApp MessageChannel = "WhatsApp"
	ChannelSMS      MessageChannel = "SMS"
	ChannelCall     MessageChannel = "Call"
)

type MessageDirection string

const (
	DirectionInbound  MessageDirection = "Inbound"
	DirectionOutbound MessageDirection = "Outbound"
)

// Message is one entry of the communications log.
type Message struct {
	ID        string           `json:"id"`
	Channel   MessageChannel   `json:"channel"`
	Direction MessageDirection `json:"direction"`
	LeadID    string           `json:"lead_id"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body"`
	SentAt    time.Time        `json:"sent_at"`
}
