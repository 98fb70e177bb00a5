package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shares(pcts ...int) []Beneficiary {
	out := make([]Beneficiary, 0, len(pcts))
	for _, p := range pcts {
		out = append(out, Beneficiary{Percentage: p})
	}
	return out
}

func TestTotalPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalPercentage(nil))
	assert.Equal(t, 80, TotalPercentage(shares(40, 40)))
	assert.Equal(t, 100, TotalPercentage(shares(50, 25, 25)))
}

func TestCanAddShare(t *testing.T) {
	t.Parallel()

	assert.True(t, CanAddShare(nil, 100))
	assert.True(t, CanAddShare(shares(40, 40), 20))
	assert.False(t, CanAddShare(shares(40, 40), 30))
	assert.False(t, CanAddShare(shares(100), 1))
}

func TestSharesComplete(t *testing.T) {
	t.Parallel()

	assert.False(t, SharesComplete(nil))
	assert.False(t, SharesComplete(shares(40)))
	assert.False(t, SharesComplete(shares(60, 60)))
	assert.True(t, SharesComplete(shares(100)))
	assert.True(t, SharesComplete(shares(40, 60)))
}

func TestBeneficiaryPatch_Apply(t *testing.T) {
	t.Parallel()

	b := Beneficiary{ID: "b1", Name: "Sara", Relation: "child", Gender: GenderFemale, Percentage: 50}
	name := "Sara Ali"
	pct := 70

	got := BeneficiaryPatch{Name: &name, Percentage: &pct}.Apply(b)

	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "Sara Ali", got.Name)
	assert.Equal(t, "child", got.Relation)
	assert.Equal(t, GenderFemale, got.Gender)
	assert.Equal(t, 70, got.Percentage)
	assert.Equal(t, "Sara", b.Name)
}
