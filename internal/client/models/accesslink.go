package models

// AccessLink is a backend-issued limited-use invitation granting course
// enrollment without payment.
type AccessLink struct {
	ID          string             `json:"id"`
	Token       string             `json:"token"`
	URL         string             `json:"url"`
	CourseID    string             `json:"courseId"`
	CourseTitle string             `json:"courseTitle,omitempty"`
	IsUsed      bool               `json:"isUsed"`
	UsedBy      string             `json:"usedBy,omitempty"`
	UsedAt      string             `json:"usedAt,omitempty"`
	ExpiresAt   string             `json:"expiresAt,omitempty"`
	IsExpired   bool               `json:"isExpired"`
	CreatedBy   *AccessLinkCreator `json:"createdBy,omitempty"`
	CreatedAt   string             `json:"createdAt"`
}

type AccessLinkCreator struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AccessLinkInfo is the public preview of a link before redemption.
type AccessLinkInfo struct {
	IsValid   bool             `json:"isValid"`
	Course    AccessLinkCourse `json:"course"`
	MaxUses   int              `json:"maxUses"`
	UsedCount int              `json:"usedCount"`
	ExpiresAt string           `json:"expiresAt,omitempty"`
}

type AccessLinkCourse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Instructor  struct {
		Name string `json:"name"`
	} `json:"instructor"`
}
