package services

import (
	"context"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

// CertificateService covers issuance, listing, public verification, and the
// direct download/preview links.
type CertificateService struct {
	api *api.Client
}

func NewCertificateService(client *api.Client) *CertificateService {
	return &CertificateService{api: client}
}

// Issue requests a certificate for a completed course.
func (s *CertificateService) Issue(ctx context.Context, courseID string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.api.Post(ctx, "/certificates/issue/"+courseID, nil, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *CertificateService) List(ctx context.Context) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := s.api.Get(ctx, "/certificates", &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

func (s *CertificateService) Get(ctx context.Context, certificateID string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.api.Get(ctx, "/certificates/"+certificateID, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *CertificateService) ByCourse(ctx context.Context, courseID string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.api.Get(ctx, "/certificates/course/"+courseID, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// Verify checks a certificate code. Public, no token required.
func (s *CertificateService) Verify(ctx context.Context, code string) (*models.CertificateVerification, error) {
	var resp models.CertificateVerification
	if err := s.api.Get(ctx, "/certificates/verify/"+code, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadURL returns a direct link to the rendered certificate. The bearer
// token rides in a query parameter so the link works outside an
// Authorization-header context.
func (s *CertificateService) DownloadURL(ctx context.Context, certificateID string) (string, error) {
	return s.api.DirectURL(ctx, "/certificates/"+certificateID+"/download")
}

// PreviewURL returns a direct link to the certificate preview image.
func (s *CertificateService) PreviewURL(ctx context.Context, certificateID string) (string, error) {
	return s.api.DirectURL(ctx, "/certificates/"+certificateID+"/preview")
}
