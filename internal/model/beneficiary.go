package model

// Gender of a beneficiary.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// FullShare is the total percentage that beneficiary shares must add up to.
const FullShare = 100

// Beneficiary is a person designated to receive a share of a policy payout.
type Beneficiary struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	IDNumber    string `json:"idNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	Percentage  int    `json:"percentage"`
}

// BeneficiaryPatch holds the fields to overwrite on an existing beneficiary.
// Nil fields are left unchanged.
type BeneficiaryPatch struct {
	Name        *string
	Relation    *string
	IDNumber    *string
	DateOfBirth *string
	Gender      *Gender
	Percentage  *int
}

// Apply returns b with the non-nil patch fields applied.
func (p BeneficiaryPatch) Apply(b Beneficiary) Beneficiary {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Relation != nil {
		b.Relation = *p.Relation
	}
	if p.IDNumber != nil {
		b.IDNumber = *p.IDNumber
	}
	if p.DateOfBirth != nil {
		b.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		b.Gender = *p.Gender
	}
	if p.Percentage != nil {
		b.Percentage = *p.Percentage
	}
	return b
}

// TotalPercentage sums the shares of all beneficiaries.
func TotalPercentage(list []Beneficiary) int {
	total := 0
	for _, b := range list {
		total += b.Percentage
	}
	return total
}

// CanAddShare reports whether a new share fits next to the existing list
// without exceeding FullShare.
func CanAddShare(list []Beneficiary, share int) bool {
	return TotalPercentage(list)+share <= FullShare
}

// SharesComplete reports whether the list is non-empty and its shares add up
// to exactly FullShare.
func SharesComplete(list []Beneficiary) bool {
	return len(list) > 0 && TotalPercentage(list) == FullShare
}
