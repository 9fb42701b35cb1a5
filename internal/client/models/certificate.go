package models

type Certificate struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	CourseID        string              `json:"courseId"`
	CertificateCode string              `json:"certificateCode"`
	IssuedAt        string              `json:"issuedAt"`
	Metadata        CertificateMetadata `json:"metadata"`
	Course          *Course             `json:"course,omitempty"`
	CreatedAt       string              `json:"createdAt"`
}

type CertificateMetadata struct {
	StudentName    string `json:"studentName"`
	CourseName     string `json:"courseName"`
	InstructorName string `json:"instructorName"`
	CompletionDate string `json:"completionDate"`
}

// CertificateVerification is the public /certificates/verify/:code result.
type CertificateVerification struct {
	Valid       bool                 `json:"valid"`
	Certificate *VerifiedCertificate `json:"certificate,omitempty"`
	Message     string               `json:"message,omitempty"`
}

type VerifiedCertificate struct {
	Code        string `json:"code"`
	StudentName string `json:"studentName"`
	CourseName  string `json:"courseName"`
	Category    string `json:"category"`
	IssuedAt    string `json:"issuedAt"`
}
