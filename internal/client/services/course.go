package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

// CourseFilters narrows the catalog listing. Zero values are omitted from
// the query string.
type CourseFilters struct {
	Category     string
	Level        models.CourseLevel
	MinPrice     float64
	MaxPrice     float64
	Search       string
	InstructorID string
	Page         int
	Limit        int
}

func (f *CourseFilters) encode() string {
	if f == nil {
		return ""
	}
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Level != "" {
		params.Set("level", string(f.Level))
	}
	if f.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.InstructorID != "" {
		params.Set("instructorId", f.InstructorID)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

type CourseInput struct {
	Title            string              `json:"title,omitempty"`
	Description      string              `json:"description,omitempty"`
	Price            *float64            `json:"price,omitempty"`
	Category         string              `json:"category,omitempty"`
	Level            models.CourseLevel  `json:"level,omitempty"`
	Thumbnail        string              `json:"thumbnail,omitempty"`
	Language         string              `json:"language,omitempty"`
	WhatYouWillLearn []string            `json:"whatYouWillLearn,omitempty"`
	PreviewVideoURL  string              `json:"previewVideoUrl,omitempty"`
	Status           models.CourseStatus `json:"status,omitempty"`
}

type ReviewInput struct {
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"reviewText,omitempty"`
}

type AccessLinkInput struct {
	MaxUses   int    `json:"maxUses,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type EnrollResult struct {
	Message    string            `json:"message"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// CourseService covers catalog browsing, course CRUD, enrollment, reviews,
// and per-course access links.
type CourseService struct {
	api *api.Client
}

func NewCourseService(client *api.Client) *CourseService {
	return &CourseService{api: client}
}

func (s *CourseService) List(ctx context.Context, filters *CourseFilters) ([]models.Course, error) {
	var resp models.CourseList
	if err := s.api.Get(ctx, "/courses"+filters.encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

func (s *CourseService) Get(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	if err := s.api.Get(ctx, "/courses/"+courseID, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Lessons returns the section/lesson tree of a course.
func (s *CourseService) Lessons(ctx context.Context, courseID string) ([]models.Section, error) {
	var sections []models.Section
	if err := s.api.Get(ctx, fmt.Sprintf("/courses/%s/lessons", courseID), &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *CourseService) Create(ctx context.Context, data CourseInput) (*models.Course, error) {
	var course models.Course
	if err := s.api.Post(ctx, "/courses", data, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Update(ctx context.Context, courseID string, data CourseInput) (*models.Course, error) {
	var course models.Course
	if err := s.api.Put(ctx, "/courses/"+courseID, data, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Delete(ctx context.Context, courseID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/courses/"+courseID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *CourseService) Enroll(ctx context.Context, courseID string) (*EnrollResult, error) {
	var resp EnrollResult
	if err := s.api.Post(ctx, fmt.Sprintf("/courses/%s/enroll", courseID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CourseService) Enrolled(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := s.api.Get(ctx, "/users/enrolled-courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// AddReview creates or replaces the caller's review for a course.
func (s *CourseService) AddReview(ctx context.Context, courseID string, data ReviewInput) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Post(ctx, fmt.Sprintf("/courses/%s/review", courseID), data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *CourseService) Reviews(ctx context.Context, courseID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.api.Get(ctx, fmt.Sprintf("/courses/%s/reviews", courseID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GenerateAccessLink mints an invitation link for a course. Instructors may
// do this for their own courses, admins for any.
func (s *CourseService) GenerateAccessLink(ctx context.Context, courseID string, data AccessLinkInput) (*models.AccessLink, error) {
	var link models.AccessLink
	if err := s.api.Post(ctx, fmt.Sprintf("/courses/%s/access-links", courseID), data, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *CourseService) AccessLinks(ctx context.Context, courseID string) ([]models.AccessLink, error) {
	var links []models.AccessLink
	if err := s.api.Get(ctx, fmt.Sprintf("/courses/%s/access-links", courseID), &links); err != nil {
		return nil, err
	}
	return links, nil
}
