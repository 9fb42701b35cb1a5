package models

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "NEW"
	InquiryInProgress InquiryStatus = "IN_PROGRESS"
	InquiryResolved   InquiryStatus = "RESOLVED"
)

type ContactInquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	UserID    string        `json:"userId,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

type InquiryStats struct {
	Total    int `json:"total"`
	ByStatus struct {
		New        int `json:"new"`
		InProgress int `json:"inProgress"`
		Resolved   int `json:"resolved"`
	} `json:"byStatus"`
}
