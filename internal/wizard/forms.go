package wizard

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"github.com/sells-group/quote-wizard/internal/i18n"
)

// QuotationForm is the input of the quotation step.
type QuotationForm struct {
	PolicyType string  `form:"policyType" validate:"required"`
	Coverage   float64 `form:"coverage" validate:"finite,gte=1000"`
	Duration   int     `form:"duration" validate:"gte=1"`
}

// DefaultQuotationForm holds the values the quotation step starts with.
func DefaultQuotationForm() QuotationForm {
	return QuotationForm{Coverage: 100000, Duration: 1}
}

// BeneficiaryForm is the input for adding one beneficiary.
type BeneficiaryForm struct {
	Name        string `form:"name" validate:"min=2"`
	Relation    string `form:"relation" validate:"required"`
	IDNumber    string `form:"idNumber" validate:"min=10"`
	DateOfBirth string `form:"dateOfBirth" validate:"required"`
	Gender      string `form:"gender" validate:"oneof=male female"`
	Percentage  int    `form:"percentage" validate:"gte=1,lte=100"`
}

// DefaultBeneficiaryForm holds the values the add-beneficiary form starts with.
func DefaultBeneficiaryForm() BeneficiaryForm {
	return BeneficiaryForm{Percentage: 100}
}

// PaymentForm is the input of the payment step.
type PaymentForm struct {
	MethodID string `form:"methodId" validate:"required"`
}

// fieldMessages maps a form field to the message shown when it is invalid.
var fieldMessages = map[string]string{
	"policyType":  i18n.MsgPolicyTypeRequired,
	"coverage":    i18n.MsgCoverageMin,
	"duration":    i18n.MsgDurationMin,
	"name":        i18n.MsgNameMin,
	"relation":    i18n.MsgRelationRequired,
	"idNumber":    i18n.MsgIDNumberInvalid,
	"dateOfBirth": i18n.MsgBirthDateRequired,
	"gender":      i18n.MsgGenderRequired,
	"percentage":  i18n.MsgPercentageRange,
	"methodId":    i18n.MsgPaymentMethodNeeded,
}

// FieldErrors maps invalid form fields to message keys.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "wizard: invalid fields: " + strings.Join(fields, ", ")
}

// Translate returns the messages localized by loc.
func (fe FieldErrors) Translate(loc *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(fe))
	for f, msg := range fe {
		out[f] = loc.T(msg)
	}
	return out
}

func messageFor(field string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return i18n.MsgInvalidValue
}

var (
	validate = newValidator()
	decoder  = newDecoder()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return v
}

// isFinite rejects NaN and infinities, which compare unpredictably against
// numeric bounds.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		if len(vals) == 0 {
			return "", nil
		}
		return strings.TrimSpace(vals[0]), nil
	}, "")
	return d
}

// Decode fills dst, a pointer to one of the form structs, from submitted
// values. Values that do not parse are reported as FieldErrors.
func Decode(values url.Values, dst any) error {
	err := decoder.Decode(dst, values)
	if err == nil {
		return nil
	}

	var derrs form.DecodeErrors
	if !errors.As(err, &derrs) {
		return eris.Wrap(err, "wizard: decode form")
	}
	fe := make(FieldErrors, len(derrs))
	for field := range derrs {
		fe[field] = messageFor(field)
	}
	return fe
}

// Validate checks a form against its schema. It returns nil or FieldErrors.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := make(FieldErrors, len(verrs))
	for _, ve := range verrs {
		fe[ve.Field()] = messageFor(ve.Field())
	}
	return fe
}
