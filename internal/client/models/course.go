package models

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
	LevelAll          CourseLevel = "ALL_LEVELS"
)

type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseArchived  CourseStatus = "ARCHIVED"
)

type ContentType string

const (
	ContentVideo      ContentType = "VIDEO"
	ContentText       ContentType = "TEXT"
	ContentQuiz       ContentType = "QUIZ"
	ContentAssignment ContentType = "ASSIGNMENT"
)

type Course struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Price            float64      `json:"price"`
	Category         string       `json:"category"`
	Level            CourseLevel  `json:"level"`
	Thumbnail        string       `json:"thumbnail,omitempty"`
	Language         string       `json:"language"`
	WhatYouWillLearn []string     `json:"whatYouWillLearn,omitempty"`
	PreviewVideoURL  string       `json:"previewVideoUrl,omitempty"`
	Status           CourseStatus `json:"status"`
	InstructorID     string       `json:"instructorId"`
	Instructor       *Instructor  `json:"instructor,omitempty"`
	AverageRating    float64      `json:"averageRating,omitempty"`
	TotalReviews     int          `json:"totalReviews,omitempty"`
	TotalEnrollments int          `json:"totalEnrollments,omitempty"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        string       `json:"updatedAt"`
}

type Instructor struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Bio         string            `json:"bio"`
	Expertise   []string          `json:"expertise"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	User        *User             `json:"user,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// Section is one node of the course content tree returned by
// /courses/:id/lessons.
type Section struct {
	ID         string   `json:"id"`
	CourseID   string   `json:"courseId"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"orderIndex"`
	Lessons    []Lesson `json:"lessons"`
}

type Lesson struct {
	ID          string      `json:"id"`
	SectionID   string      `json:"sectionId"`
	Title       string      `json:"title"`
	ContentType ContentType `json:"contentType"`
	VideoURL    string      `json:"videoUrl,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
	Duration    int         `json:"duration,omitempty"`
	OrderIndex  int         `json:"orderIndex"`
	IsFree      bool        `json:"isFree"`
	Quizzes     []Quiz      `json:"quizzes,omitempty"`
}

type Quiz struct {
	ID           string         `json:"id"`
	LessonID     string         `json:"lessonId"`
	Title        string         `json:"title"`
	PassingScore int            `json:"passingScore"`
	Questions    []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type Review struct {
	ID         string  `json:"id"`
	CourseID   string  `json:"courseId"`
	UserID     string  `json:"userId"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"reviewText,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// CourseList is the paginated shape of GET /courses.
type CourseList struct {
	Courses    []Course   `json:"courses"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
