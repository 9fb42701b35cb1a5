package services

import (
	"context"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SubmittedInquiry struct {
	Message string `json:"message"`
	Inquiry struct {
		ID        string `json:"id"`
		Subject   string `json:"subject"`
		CreatedAt string `json:"createdAt"`
	} `json:"inquiry"`
}

// ContactService covers inquiry intake (public) and triage (admin-only on
// the backend).
type ContactService struct {
	api *api.Client
}

func NewContactService(client *api.Client) *ContactService {
	return &ContactService{api: client}
}

func (s *ContactService) Submit(ctx context.Context, data ContactInput) (*SubmittedInquiry, error) {
	var resp SubmittedInquiry
	if err := s.api.Post(ctx, "/contact", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns inquiries, optionally filtered by status.
func (s *ContactService) List(ctx context.Context, status models.InquiryStatus) ([]models.ContactInquiry, error) {
	path := "/contact"
	if status != "" {
		path += "?status=" + string(status)
	}
	var inquiries []models.ContactInquiry
	if err := s.api.Get(ctx, path, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (s *ContactService) Stats(ctx context.Context) (*models.InquiryStats, error) {
	var stats models.InquiryStats
	if err := s.api.Get(ctx, "/contact/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *ContactService) Get(ctx context.Context, inquiryID string) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	if err := s.api.Get(ctx, "/contact/"+inquiryID, &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, inquiryID string, status models.InquiryStatus) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	body := map[string]models.InquiryStatus{"status": status}
	if err := s.api.Put(ctx, "/contact/"+inquiryID, body, &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *ContactService) Delete(ctx context.Context, inquiryID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/contact/"+inquiryID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
