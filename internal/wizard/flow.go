package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/model"
)

// Step is one screen of the linear wizard.
type Step int

const (
	StepQuotation Step = iota
	StepBeneficiaries
	StepPayment
	StepResult
)

// Steps lists the wizard screens in order.
var Steps = []Step{StepQuotation, StepBeneficiaries, StepPayment, StepResult}

var stepPaths = map[Step]string{
	StepQuotation:     "/quotation",
	StepBeneficiaries: "/beneficiaries",
	StepPayment:       "/payment",
	StepResult:        "/policy-result",
}

func (s Step) String() string {
	switch s {
	case StepQuotation:
		return "quotation"
	case StepBeneficiaries:
		return "beneficiaries"
	case StepPayment:
		return "payment"
	case StepResult:
		return "result"
	default:
		return "unknown"
	}
}

// Path returns the route of the step.
func (s Step) Path() string {
	if p, ok := stepPaths[s]; ok {
		return p
	}
	return stepPaths[StepQuotation]
}

// Next returns the following step. Result has no successor.
func (s Step) Next() Step {
	if s >= StepResult {
		return StepResult
	}
	return s + 1
}

// Prev returns the preceding step. Quotation has no predecessor.
func (s Step) Prev() Step {
	if s <= StepQuotation {
		return StepQuotation
	}
	return s - 1
}

// Errors that block a forward transition. Their messages are i18n keys.
var (
	ErrShareExceeded    = errors.New(i18n.MsgShareExceeded)
	ErrNoBeneficiaries  = errors.New(i18n.MsgNoBeneficiaries)
	ErrSharesIncomplete = errors.New(i18n.MsgSharesIncomplete)
	ErrNoQuotation      = errors.New(i18n.MsgNoQuotation)
	ErrNoPolicy         = errors.New(i18n.MsgNoPolicy)
	ErrNoPaymentMethod  = errors.New(i18n.MsgPaymentMethodNeeded)
)

// SubmitQuotation validates the quotation form and creates the quotation.
// On success the wizard moves to the beneficiaries step.
func SubmitQuotation(ctx context.Context, s *Store, form QuotationForm, now time.Time) (Step, error) {
	if err := Validate(form); err != nil {
		return StepQuotation, err
	}
	draft := model.NewQuotationDraft(form.PolicyType, form.Coverage, form.Duration, now)
	if err := s.CreateQuotation(ctx, draft); err != nil {
		return StepQuotation, err
	}
	return StepBeneficiaries, nil
}

// AddBeneficiary validates the form and appends the beneficiary when its
// share still fits under 100%.
func AddBeneficiary(s *Store, form BeneficiaryForm) (model.Beneficiary, error) {
	if err := Validate(form); err != nil {
		return model.Beneficiary{}, err
	}
	if !model.CanAddShare(s.Snapshot().Beneficiaries, form.Percentage) {
		return model.Beneficiary{}, ErrShareExceeded
	}
	return s.AddBeneficiary(model.Beneficiary{
		Name:        form.Name,
		Relation:    form.Relation,
		IDNumber:    form.IDNumber,
		DateOfBirth: form.DateOfBirth,
		Gender:      model.Gender(form.Gender),
		Percentage:  form.Percentage,
	}), nil
}

// ContinueFromBeneficiaries issues the policy once the beneficiary shares are
// complete. ErrNoQuotation means the user must restart at the quotation step.
func ContinueFromBeneficiaries(ctx context.Context, s *Store) (Step, error) {
	st := s.Snapshot()
	if len(st.Beneficiaries) == 0 {
		return StepBeneficiaries, ErrNoBeneficiaries
	}
	if !model.SharesComplete(st.Beneficiaries) {
		return StepBeneficiaries, ErrSharesIncomplete
	}
	if st.Quotation == nil {
		return StepQuotation, ErrNoQuotation
	}
	if err := s.CreatePolicy(ctx, st.Quotation.ID, st.Beneficiaries); err != nil {
		return StepBeneficiaries, err
	}
	return StepPayment, nil
}

// SubmitPayment pays the current policy's premium with the selected method,
// which must be one of methods.
func SubmitPayment(ctx context.Context, s *Store, form PaymentForm, methods []model.PaymentMethod) (Step, error) {
	if err := Validate(form); err != nil {
		return StepPayment, err
	}
	var method *model.PaymentMethod
	for i := range methods {
		if methods[i].ID == form.MethodID {
			method = &methods[i]
			break
		}
	}
	if method == nil {
		return StepPayment, ErrNoPaymentMethod
	}

	st := s.Snapshot()
	if st.CurrentPolicy == nil {
		return StepPayment, ErrNoPolicy
	}
	if st.Quotation == nil {
		return StepPayment, ErrNoQuotation
	}

	req := model.PaymentRequest{
		PolicyID: st.CurrentPolicy.ID,
		Amount:   st.Quotation.Premium,
		Method:   *method,
	}
	if err := s.ProcessPayment(ctx, req); err != nil {
		return StepPayment, err
	}
	return StepResult, nil
}

// EnterResult fetches the policy result once, when a policy exists and no
// result has been loaded yet.
func EnterResult(ctx context.Context, s *Store) error {
	st := s.Snapshot()
	if st.CurrentPolicy == nil || st.PolicyResult != nil {
		return nil
	}
	return s.GetPolicyResult(ctx, st.CurrentPolicy.ID)
}
