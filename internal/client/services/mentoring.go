package services

import (
	"context"
	"fmt"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

type AvailabilityInput struct {
	DayOfWeek models.DayOfWeek `json:"dayOfWeek,omitempty"`
	StartTime string           `json:"startTime,omitempty"`
	EndTime   string           `json:"endTime,omitempty"`
	IsActive  *bool            `json:"isActive,omitempty"`
}

type BookSessionInput struct {
	InstructorID string `json:"instructorId"`
	ScheduledAt  string `json:"scheduledAt"`
	Duration     int    `json:"duration"`
	Topic        string `json:"topic"`
}

type SessionUpdate struct {
	ScheduledAt     string               `json:"scheduledAt,omitempty"`
	Status          models.SessionStatus `json:"status,omitempty"`
	MeetingLink     string               `json:"meetingLink,omitempty"`
	InstructorNotes string               `json:"instructorNotes,omitempty"`
	StudentNotes    string               `json:"studentNotes,omitempty"`
}

// MentoringService covers instructor discovery, weekly availability, and
// one-on-one session booking.
type MentoringService struct {
	api *api.Client
}

func NewMentoringService(client *api.Client) *MentoringService {
	return &MentoringService{api: client}
}

func (s *MentoringService) Instructors(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	if err := s.api.Get(ctx, "/mentoring/instructors", &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (s *MentoringService) InstructorAvailability(ctx context.Context, instructorID string) ([]models.Availability, error) {
	var slots []models.Availability
	if err := s.api.Get(ctx, fmt.Sprintf("/mentoring/instructors/%s/availability", instructorID), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// SetAvailability publishes a weekly slot for the calling instructor.
func (s *MentoringService) SetAvailability(ctx context.Context, data AvailabilityInput) (*models.Availability, error) {
	var slot models.Availability
	if err := s.api.Post(ctx, "/mentoring/availability", data, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *MentoringService) MyAvailability(ctx context.Context) ([]models.Availability, error) {
	var slots []models.Availability
	if err := s.api.Get(ctx, "/mentoring/availability", &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *MentoringService) UpdateAvailability(ctx context.Context, availabilityID string, data AvailabilityInput) (*models.Availability, error) {
	var slot models.Availability
	if err := s.api.Put(ctx, "/mentoring/availability/"+availabilityID, data, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *MentoringService) DeleteAvailability(ctx context.Context, availabilityID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/mentoring/availability/"+availabilityID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *MentoringService) BookSession(ctx context.Context, data BookSessionInput) (*models.MentoringSession, error) {
	var session models.MentoringSession
	if err := s.api.Post(ctx, "/mentoring/sessions", data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MentoringService) MySessions(ctx context.Context) ([]models.MentoringSession, error) {
	var sessions []models.MentoringSession
	if err := s.api.Get(ctx, "/mentoring/sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *MentoringService) Session(ctx context.Context, sessionID string) (*models.MentoringSession, error) {
	var session models.MentoringSession
	if err := s.api.Get(ctx, "/mentoring/sessions/"+sessionID, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MentoringService) UpdateSession(ctx context.Context, sessionID string, data SessionUpdate) (*models.MentoringSession, error) {
	var session models.MentoringSession
	if err := s.api.Put(ctx, "/mentoring/sessions/"+sessionID, data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MentoringService) CancelSession(ctx context.Context, sessionID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/mentoring/sessions/"+sessionID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
