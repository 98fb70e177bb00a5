package model

// PolicyStatus represents the lifecycle state of an issued policy.
type PolicyStatus string

const (
	PolicyStatusDraft     PolicyStatus = "draft"
	PolicyStatusPending   PolicyStatus = "pending"
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusExpired   PolicyStatus = "expired"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

// ContactInfo holds optional contact details of the insured party.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// User is the insured party referenced by a policy.
type User struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId,omitempty"`
	LoginID     string       `json:"loginId,omitempty"`
	Name        string       `json:"name,omitempty"`
	Avatar      string       `json:"avatar,omitempty"`
	Gender      string       `json:"gender,omitempty"`
	Birthday    string       `json:"birthday,omitempty"`
	Nationality string       `json:"nationality,omitempty"`
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}

// Policy is an issued insurance contract.
type Policy struct {
	ID            string        `json:"id"`
	PolicyNumber  string        `json:"policyNumber"`
	Quotation     Quotation     `json:"quotation"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`
	Insured       User          `json:"insured"`
	Status        PolicyStatus  `json:"status"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

// CreatePolicyRequest is the body sent to issue a policy from a quotation.
type CreatePolicyRequest struct {
	QuotationID   string        `json:"quotationId"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`
}
