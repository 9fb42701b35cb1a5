package services

import (
	"context"
	"fmt"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

type ProgressUpdate struct {
	LessonID         string                  `json:"lessonId"`
	CompletionStatus models.CompletionStatus `json:"completionStatus"`
	TimeSpent        int                     `json:"timeSpent,omitempty"`
}

// QuizAnswers maps a question index (as the backend keys it, a string) to
// the chosen option index.
type QuizAnswers map[string]int

// LearningService covers the lesson viewer: progress tracking, the enrolled
// view of a course, and quiz attempts.
type LearningService struct {
	api *api.Client
}

func NewLearningService(client *api.Client) *LearningService {
	return &LearningService{api: client}
}

func (s *LearningService) Progress(ctx context.Context) ([]models.UserProgress, error) {
	var progress []models.UserProgress
	if err := s.api.Get(ctx, "/learn/progress", &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *LearningService) UpdateProgress(ctx context.Context, data ProgressUpdate) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Post(ctx, "/learn/progress", data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// EnrolledCourse returns a course enriched with the caller's progress.
func (s *LearningService) EnrolledCourse(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	if err := s.api.Get(ctx, "/learn/courses/"+courseID, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *LearningService) SubmitQuiz(ctx context.Context, quizID string, answers QuizAnswers) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	body := map[string]QuizAnswers{"answers": answers}
	if err := s.api.Post(ctx, fmt.Sprintf("/learn/quiz/%s/attempt", quizID), body, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}
