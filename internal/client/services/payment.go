package services

import (
	"context"
	"encoding/json"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

// PaymentService drives the purchase lifecycle: checkout, capture after the
// buyer approves the order, verification, and subscriptions.
type PaymentService struct {
	api *api.Client
}

func NewPaymentService(client *api.Client) *PaymentService {
	return &PaymentService{api: client}
}

func (s *PaymentService) Checkout(ctx context.Context, courseID string) (*models.Checkout, error) {
	var resp models.Checkout
	body := map[string]string{"courseId": courseID}
	if err := s.api.Post(ctx, "/payments/checkout", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PaymentService) Capture(ctx context.Context, orderID string) (*models.PaymentCapture, error) {
	var resp models.PaymentCapture
	if err := s.api.Post(ctx, "/payments/capture/"+orderID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PaymentService) Verify(ctx context.Context, paymentID string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.api.Get(ctx, "/payments/verify/"+paymentID, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Subscriptions returns the caller's subscriptions. The backend has not
// settled on a schema here, so the raw documents are passed through.
func (s *PaymentService) Subscriptions(ctx context.Context) ([]json.RawMessage, error) {
	var subs []json.RawMessage
	if err := s.api.Get(ctx, "/payments/subscriptions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *PaymentService) CreateSubscription(ctx context.Context, planType string) (*models.Subscription, error) {
	var sub models.Subscription
	body := map[string]string{"planType": planType}
	if err := s.api.Post(ctx, "/payments/subscriptions", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *PaymentService) CancelSubscription(ctx context.Context, subscriptionID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/payments/subscriptions/"+subscriptionID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
