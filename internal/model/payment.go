package model

// PaymentMethodType identifies how a premium is paid.
type PaymentMethodType string

const (
	PaymentMethodBalance   PaymentMethodType = "balance"
	PaymentMethodCard      PaymentMethodType = "card"
	PaymentMethodAgreement PaymentMethodType = "agreement"
)

// PaymentStatus is the backend-reported state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod is one selectable way of paying a premium.
type PaymentMethod struct {
	ID      string            `json:"id"`
	Type    PaymentMethodType `json:"type"`
	Name    string            `json:"name"`
	Details string            `json:"details,omitempty"`
}

// PaymentRequest pays the premium of a policy.
type PaymentRequest struct {
	PolicyID      string        `json:"policyId"`
	Amount        float64       `json:"amount"`
	Method        PaymentMethod `json:"method"`
	AgreementCode string        `json:"agreementCode,omitempty"`
}

// PaymentResponse is the terminal outcome of a PaymentRequest.
type PaymentResponse struct {
	Success       bool          `json:"success"`
	TransactionID string        `json:"transactionId,omitempty"`
	PolicyID      string        `json:"policyId"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Message       string        `json:"message,omitempty"`
}

// Succeeded reports whether the payment went through.
func (p *PaymentResponse) Succeeded() bool {
	if p == nil {
		return false
	}
	return p.Success || p.Status == PaymentStatusCompleted
}

// PolicyResult is the consolidated outcome shown after payment.
type PolicyResult struct {
	Policy      Policy          `json:"policy"`
	Payment     PaymentResponse `json:"payment"`
	DocumentURL string          `json:"documentUrl,omitempty"`
}
