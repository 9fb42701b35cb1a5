package models

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

type SessionStatus string

const (
	SessionScheduled             SessionStatus = "SCHEDULED"
	SessionCompleted             SessionStatus = "COMPLETED"
	SessionCancelledByStudent    SessionStatus = "CANCELLED_BY_STUDENT"
	SessionCancelledByInstructor SessionStatus = "CANCELLED_BY_INSTRUCTOR"
)

type Availability struct {
	ID           string      `json:"id"`
	InstructorID string      `json:"instructorId"`
	DayOfWeek    DayOfWeek   `json:"dayOfWeek"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	IsActive     bool        `json:"isActive"`
	Instructor   *Instructor `json:"instructor,omitempty"`
	CreatedAt    string      `json:"createdAt"`
}

type MentoringSession struct {
	ID              string        `json:"id"`
	InstructorID    string        `json:"instructorId"`
	StudentID       string        `json:"studentId"`
	ScheduledAt     string        `json:"scheduledAt"`
	Duration        int           `json:"duration"`
	Status          SessionStatus `json:"status"`
	Topic           string        `json:"topic"`
	MeetingLink     string        `json:"meetingLink,omitempty"`
	InstructorNotes string        `json:"instructorNotes,omitempty"`
	StudentNotes    string        `json:"studentNotes,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}
