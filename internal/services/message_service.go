package services

import (
	"context"
	"errors"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/outbox"
	"estatecrm/internal/repositories"

	"github.com/google/uuid"
)

type MessageService struct {
	Repo       *repositories.MessageRepository
	LeadRepo   *repositories.LeadRepository
	Dispatcher outbox.Dispatcher
}

func NewMessageService(repo *repositories.MessageRepository, leadRepo *repositories.LeadRepository, dispatcher outbox.Dispatcher) *MessageService {
	return &MessageService{Repo: repo, LeadRepo: leadRepo, Dispatcher: dispatcher}
}

// List returns the communications log, optionally restricted to a lead.
func (s *MessageService) List(leadID string) []models.Message {
	msgs := s.Repo.List()
	if leadID == "" {
		return msgs
	}
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.LeadID == leadID {
			out = append(out, m)
		}
	}
	return out
}

// Send is the mock dispatch action: the message is appended to the log
// and the outbox records the confirmation. Nothing leaves the process
// unless the email dispatcher is configured without dry run.
func (s *MessageService) Send(ctx context.Context, channel models.MessageChannel, leadID, subject, body string) (models.Message, error) {
	lead, err := s.LeadRepo.GetByID(leadID)
	if err != nil {
		return models.Message{}, errors.New("lead not found")
	}

	m := models.Message{
		ID:        uuid.NewString(),
		Channel:   channel,
		Direction: models.DirectionOutbound,
		LeadID:    leadID,
		Subject:   subject,
		Body:      body,
		SentAt:    time.Now(),
	}
	s.Repo.Create(m)

	kind := outbox.KindEmail
	to := lead.Email
	switch channel {
	case models.ChannelWhatsApp:
		kind, to = outbox.KindWhatsApp, lead.Phone
	case models.ChannelSMS:
		kind, to = outbox.KindSMS, lead.Phone
	case models.ChannelCall:
		kind, to = outbox.KindCall, lead.Phone
	}
	_ = s.Dispatcher.Dispatch(ctx, outbox.Event{Kind: kind, To: to, Subject: subject, Body: body})
	return m, nil
}
