package services

import (
	"context"
	"testing"

	"estatecrm/internal/models"
	"estatecrm/internal/outbox"
	"estatecrm/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func newMessageService(s *repositories.Store, disp outbox.Dispatcher) *MessageService {
	return NewMessageService(repositories.NewMessageRepository(s), repositories.NewLeadRepository(s), disp)
}

func TestSendMessageRoutesChannel(t *testing.T) {
	s := repositories.Seeded()
	disp := outbox.NewNopDispatcher()
	svc := newMessageService(s, disp)

	m, err := svc.Send(context.Background(), models.ChannelWhatsApp, "l1", "", "Viewing confirmed for tomorrow")
	assert.NoError(t, err)
	assert.Equal(t, models.DirectionOutbound, m.Direction)
	assert.Equal(t, "l1", m.LeadID)

	// WhatsApp goes to the lead's phone, email to the lead's address.
	assert.Len(t, disp.Events, 1)
	assert.Equal(t, outbox.KindWhatsApp, disp.Events[0].Kind)
	assert.Equal(t, "+1-555-0201", disp.Events[0].To)

	_, err = svc.Send(context.Background(), models.ChannelEmail, "l1", "Shortlist", "Attached")
	assert.NoError(t, err)
	assert.Equal(t, outbox.KindEmail, disp.Events[1].Kind)
	assert.Equal(t, "maria.rodriguez@example.com", disp.Events[1].To)
}

func TestSendMessageUnknownLead(t *testing.T) {
	s := repositories.Seeded()
	disp := outbox.NewNopDispatcher()
	svc := newMessageService(s, disp)

	_, err := svc.Send(context.Background(), models.ChannelEmail, "l404", "", "")
	assert.EqualError(t, err, "lead not found")
	assert.Empty(t, disp.Events)
}

func TestMessageListByLead(t *testing.T) {
	svc := newMessageService(repositories.Seeded(), outbox.NewNopDispatcher())

	assert.Len(t, svc.List(""), 4)
	forL1 := svc.List("l1")
	assert.Len(t, forL1, 1)
	assert.Equal(t, "m1", forL1[0].ID)
}
