package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/outbox"
	"estatecrm/internal/repositories"

	"github.com/google/uuid"
)

type PaymentService struct {
	Repo       *repositories.PaymentRepository
	ClientRepo *repositories.ClientRepository
	Dispatcher outbox.Dispatcher
}

func NewPaymentService(repo *repositories.PaymentRepository, clientRepo *repositories.ClientRepository, dispatcher outbox.Dispatcher) *PaymentService {
	return &PaymentService{Repo: repo, ClientRepo: clientRepo, Dispatcher: dispatcher}
}

func (s *PaymentService) List() []models.Payment {
	return s.Repo.List()
}

func (s *PaymentService) Stats() crm.PaymentStats {
	return crm.SummarizePayments(s.Repo.List())
}

// Collect is the mock payment action: a pending ledger record plus a
// payment-link confirmation through the outbox. No money moves.
func (s *PaymentService) Collect(ctx context.Context, clientID, dealID string, amount float64, method models.PaymentMethod, description string) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, errors.New("amount must be positive")
	}
	client, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return models.Payment{}, errors.New("client not found")
	}

	p := models.Payment{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		DealID:      dealID,
		Amount:      amount,
		Method:      method,
		Status:      models.PaymentPending,
		Description: description,
		CreatedAt:   time.Now(),
	}
	s.Repo.Create(p)

	_ = s.Dispatcher.Dispatch(ctx, outbox.Event{
		Kind:    outbox.KindPaymentLink,
		To:      client.Email,
		Subject: fmt.Sprintf("Payment link for $%.0f", amount),
		Body:    description,
	})
	return p, nil
}
