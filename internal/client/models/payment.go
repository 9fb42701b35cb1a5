package models

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Checkout is returned by POST /payments/checkout; ApprovalURL is where the
// buyer completes the purchase before the order can be captured.
type Checkout struct {
	OrderID     string `json:"orderId"`
	ApprovalURL string `json:"approvalUrl"`
}

type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	CourseID      string        `json:"courseId"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	PaypalOrderID string        `json:"paypalOrderId,omitempty"`
	CreatedAt     string        `json:"createdAt"`
}

type PaymentCapture struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Payment    Payment    `json:"payment"`
	Enrollment Enrollment `json:"enrollment"`
}

type Subscription struct {
	OrderID   string `json:"orderId"`
	URL       string `json:"url"`
	PaymentID string `json:"paymentId"`
}
