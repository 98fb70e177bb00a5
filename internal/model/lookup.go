package model

// LookupCategory names a reference-data enumeration on the backend.
type LookupCategory string

const (
	LookupPolicyTypes          LookupCategory = "policy-types"
	LookupBeneficiaryRelations LookupCategory = "beneficiary-relations"
	LookupPaymentMethods       LookupCategory = "payment-methods"
	LookupCoverageAmounts      LookupCategory = "coverage-amounts"
	LookupPolicyDurations      LookupCategory = "policy-durations"
)

// LookupCategories lists every category in display order.
var LookupCategories = []LookupCategory{
	LookupPolicyTypes,
	LookupCoverageAmounts,
	LookupPolicyDurations,
	LookupBeneficiaryRelations,
	LookupPaymentMethods,
}

// Valid reports whether c is a known category.
func (c LookupCategory) Valid() bool {
	for _, k := range LookupCategories {
		if c == k {
			return true
		}
	}
	return false
}

// LookupItem is one option of a reference-data enumeration.
type LookupItem struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	NameEn      string `json:"nameEn,omitempty"`
	Description string `json:"description,omitempty"`
}

// FindByCode returns the item with the given code, or nil.
func FindByCode(items []LookupItem, code string) *LookupItem {
	for i := range items {
		if items[i].Code == code {
			return &items[i]
		}
	}
	return nil
}
