package services

import (
	"context"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

type RedeemedLink struct {
	Message    string            `json:"message"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// AccessLinkService resolves and redeems invitation links. Minting links for
// a course lives on CourseService.
type AccessLinkService struct {
	api *api.Client
}

func NewAccessLinkService(client *api.Client) *AccessLinkService {
	return &AccessLinkService{api: client}
}

// Info previews a link before redemption. Public, no token required.
func (s *AccessLinkService) Info(ctx context.Context, linkToken string) (*models.AccessLinkInfo, error) {
	var info models.AccessLinkInfo
	if err := s.api.Get(ctx, "/access-links/"+linkToken, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Redeem consumes the link and enrolls the calling user in its course.
func (s *AccessLinkService) Redeem(ctx context.Context, linkToken string) (*RedeemedLink, error) {
	var resp RedeemedLink
	if err := s.api.Post(ctx, "/access-links/redeem/"+linkToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Revoke deletes a link so it can no longer be redeemed.
func (s *AccessLinkService) Revoke(ctx context.Context, linkID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/access-links/"+linkID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
