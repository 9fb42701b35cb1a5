package models

type CompletionStatus string

const (
	ProgressNotStarted CompletionStatus = "NOT_STARTED"
	ProgressInProgress CompletionStatus = "IN_PROGRESS"
	ProgressCompleted  CompletionStatus = "COMPLETED"
)

type UserProgress struct {
	CourseID         string           `json:"courseId"`
	CourseTitle      string           `json:"courseTitle"`
	EnrollmentDate   string           `json:"enrollmentDate"`
	CompletionStatus CompletionStatus `json:"completionStatus"`
	Progress         float64          `json:"progress"`
	TotalLessons     int              `json:"totalLessons"`
	CompletedLessons int              `json:"completedLessons"`
	LastAccessedAt   string           `json:"lastAccessedAt,omitempty"`
}

type QuizAttempt struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	QuizID         string `json:"quizId"`
	Score          int    `json:"score"`
	Passed         bool   `json:"passed"`
	TotalQuestions int    `json:"totalQuestions"`
	CorrectAnswers int    `json:"correctAnswers"`
	PassingScore   int    `json:"passingScore"`
	CompletedAt    string `json:"completedAt"`
}

type Enrollment struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	EnrolledAt string `json:"enrolledAt"`
}
