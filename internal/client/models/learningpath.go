package models

type LearningPath struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Thumbnail    string         `json:"thumbnail,omitempty"`
	Difficulty   CourseLevel    `json:"difficulty"`
	OrderIndex   int            `json:"orderIndex"`
	IsPublished  bool           `json:"isPublished"`
	TotalCourses int            `json:"totalCourses"`
	Courses      []CourseInPath `json:"courses"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
}

type CourseInPath struct {
	Course
	OrderInPath int `json:"orderInPath"`
}
