package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNew_ResolvesLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.English, New("en").Tag())
	assert.Equal(t, language.English, New("").Tag())
	assert.Equal(t, language.English, New("not a locale!").Tag())
	assert.Equal(t, language.Arabic, New("ar").Tag())
	assert.Equal(t, language.Arabic, New("ar-SA").Tag())
	assert.True(t, New("ar").RTL())
	assert.False(t, New("en").RTL())
}

func TestT_TranslatesKnownKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Failed to process the payment", New("en").T(MsgPaymentFailed))
	assert.Equal(t, "فشل معالجة الدفع", New("ar").T(MsgPaymentFailed))
	assert.Equal(t, "server said no", New("ar").T("server said no"))
}

func TestAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100,000", New("en").Amount(100000))
	assert.Equal(t, "83", New("en").Amount(83))
}

func TestArabicCatalogComplete(t *testing.T) {
	t.Parallel()

	keys := []string{
		MsgCreateQuotationFailed, MsgGetQuotationFailed, MsgCreatePolicyFailed,
		MsgGetPolicyFailed, MsgGetPoliciesFailed, MsgPaymentFailed, MsgPolicyResultFailed,
		MsgShareExceeded, MsgNoBeneficiaries, MsgSharesIncomplete, MsgNoQuotation,
	}
	for _, k := range keys {
		assert.NotEmpty(t, arabic[k], k)
	}
}

func TestT_PageLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "مبلغ التغطية", New("ar").T("Coverage"))
	assert.Equal(t, "Coverage", New("en").T("Coverage"))
	for k := range arabicLabels {
		assert.Equal(t, arabicLabels[k], arabic[k], k)
	}
}
