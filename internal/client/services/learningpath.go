package services

import (
	"context"
	"fmt"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

type LearningPathInput struct {
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Thumbnail   string             `json:"thumbnail,omitempty"`
	Difficulty  models.CourseLevel `json:"difficulty,omitempty"`
	OrderIndex  *int               `json:"orderIndex,omitempty"`
	CourseIDs   []string           `json:"courseIds,omitempty"`
	IsPublished *bool              `json:"isPublished,omitempty"`
}

type CourseOrder struct {
	CourseID   string `json:"courseId"`
	OrderIndex int    `json:"orderIndex"`
}

// LearningPathService manages curated course sequences. Reads are public,
// writes are admin-only on the backend.
type LearningPathService struct {
	api *api.Client
}

func NewLearningPathService(client *api.Client) *LearningPathService {
	return &LearningPathService{api: client}
}

func (s *LearningPathService) List(ctx context.Context) ([]models.LearningPath, error) {
	var paths []models.LearningPath
	if err := s.api.Get(ctx, "/learning-paths", &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *LearningPathService) Get(ctx context.Context, pathID string) (*models.LearningPath, error) {
	var path models.LearningPath
	if err := s.api.Get(ctx, "/learning-paths/"+pathID, &path); err != nil {
		return nil, err
	}
	return &path, nil
}

func (s *LearningPathService) Create(ctx context.Context, data LearningPathInput) (*models.LearningPath, error) {
	var path models.LearningPath
	if err := s.api.Post(ctx, "/learning-paths", data, &path); err != nil {
		return nil, err
	}
	return &path, nil
}

func (s *LearningPathService) Update(ctx context.Context, pathID string, data LearningPathInput) (*models.LearningPath, error) {
	var path models.LearningPath
	if err := s.api.Put(ctx, "/learning-paths/"+pathID, data, &path); err != nil {
		return nil, err
	}
	return &path, nil
}

func (s *LearningPathService) Delete(ctx context.Context, pathID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/learning-paths/"+pathID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *LearningPathService) AddCourse(ctx context.Context, pathID, courseID string, orderIndex int) (*models.Message, error) {
	var msg models.Message
	body := CourseOrder{CourseID: courseID, OrderIndex: orderIndex}
	if err := s.api.Post(ctx, fmt.Sprintf("/learning-paths/%s/courses", pathID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *LearningPathService) RemoveCourse(ctx context.Context, pathID, courseID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, fmt.Sprintf("/learning-paths/%s/courses/%s", pathID, courseID), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *LearningPathService) ReorderCourses(ctx context.Context, pathID string, orders []CourseOrder) (*models.Message, error) {
	var msg models.Message
	body := map[string][]CourseOrder{"courseOrders": orders}
	if err := s.api.Put(ctx, fmt.Sprintf("/learning-paths/%s/courses/reorder", pathID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
