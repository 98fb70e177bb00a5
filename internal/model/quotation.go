package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MinCoverage is the smallest coverage amount a quotation may request.
const MinCoverage = 1000

// premiumRate is the annual premium as a fraction of coverage.
var premiumRate = decimal.RequireFromString("0.01")

// DefaultBenefits and DefaultTerms are attached to every quotation draft.
var (
	DefaultBenefits = []string{"Comprehensive medical cover", "Death cover", "Disability cover"}
	DefaultTerms    = []string{"General terms", "Special terms"}
)

// Quotation is a priced insurance offer prior to policy issuance.
type Quotation struct {
	ID         string   `json:"id,omitempty"`
	PolicyType string   `json:"policyType,omitempty"`
	Coverage   float64  `json:"coverage,omitempty"`
	Premium    float64  `json:"premium,omitempty"`
	Duration   int      `json:"duration,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Benefits   []string `json:"benefits,omitempty"`
	Terms      []string `json:"terms,omitempty"`
}

// PremiumFor derives the premium for a coverage amount and a duration in
// years: round(coverage * 0.01 * duration / 12), half away from zero.
// Non-positive or non-finite input yields 0.
func PremiumFor(coverage float64, duration int) float64 {
	if math.IsNaN(coverage) || math.IsInf(coverage, 0) || coverage <= 0 || duration <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(coverage).
		Mul(premiumRate).
		Mul(decimal.NewFromInt(int64(duration))).
		Div(decimal.NewFromInt(12)).
		Round(0)
	return p.InexactFloat64()
}

// NewQuotationDraft builds the partial quotation submitted to the backend.
// The policy starts at now and runs for duration*365 days.
func NewQuotationDraft(policyType string, coverage float64, duration int, now time.Time) Quotation {
	now = now.UTC()
	end := now.Add(time.Duration(duration) * 365 * 24 * time.Hour)
	return Quotation{
		PolicyType: policyType,
		Coverage:   coverage,
		Premium:    PremiumFor(coverage, duration),
		Duration:   duration,
		StartDate:  now.Format(time.RFC3339),
		EndDate:    end.Format(time.RFC3339),
		Benefits:   append([]string(nil), DefaultBenefits...),
		Terms:      append([]string(nil), DefaultTerms...),
	}
}
