package wizard

import (
	"context"
	"errors"
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/model"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func validBeneficiary(share int) BeneficiaryForm {
	return BeneficiaryForm{
		Name:        "Sara Ali",
		Relation:    "spouse",
		IDNumber:    "1234567890",
		DateOfBirth: "1990-05-01",
		Gender:      "female",
		Percentage:  share,
	}
}

func TestStep_Navigation(t *testing.T) {
	assert.Equal(t, "/quotation", StepQuotation.Path())
	assert.Equal(t, "/beneficiaries", StepBeneficiaries.Path())
	assert.Equal(t, "/payment", StepPayment.Path())
	assert.Equal(t, "/policy-result", StepResult.Path())
	assert.Equal(t, "/quotation", Step(42).Path())

	assert.Equal(t, StepBeneficiaries, StepQuotation.Next())
	assert.Equal(t, StepResult, StepResult.Next())
	assert.Equal(t, StepQuotation, StepQuotation.Prev())
	assert.Equal(t, StepPayment, StepResult.Prev())
	assert.Equal(t, "unknown", Step(-1).String())
}

func TestSubmitQuotation(t *testing.T) {
	tests := []struct {
		name     string
		form     QuotationForm
		wantStep Step
		wantErr  map[string]string
	}{
		{
			name:     "coverage below minimum",
			form:     QuotationForm{PolicyType: "life", Coverage: 500, Duration: 1},
			wantStep: StepQuotation,
			wantErr:  map[string]string{"coverage": i18n.MsgCoverageMin},
		},
		{
			name:     "missing type and zero duration",
			form:     QuotationForm{Coverage: 5000},
			wantStep: StepQuotation,
			wantErr: map[string]string{
				"policyType": i18n.MsgPolicyTypeRequired,
				"duration":   i18n.MsgDurationMin,
			},
		},
		{
			name:     "NaN coverage",
			form:     QuotationForm{PolicyType: "life", Coverage: math.NaN(), Duration: 1},
			wantStep: StepQuotation,
			wantErr:  map[string]string{"coverage": i18n.MsgCoverageMin},
		},
		{
			name:     "infinite coverage",
			form:     QuotationForm{PolicyType: "life", Coverage: math.Inf(1), Duration: 1},
			wantStep: StepQuotation,
			wantErr:  map[string]string{"coverage": i18n.MsgCoverageMin},
		},
		{
			name:     "negative infinite coverage",
			form:     QuotationForm{PolicyType: "life", Coverage: math.Inf(-1), Duration: 1},
			wantStep: StepQuotation,
			wantErr:  map[string]string{"coverage": i18n.MsgCoverageMin},
		},
		{
			name:     "minimum coverage accepted",
			form:     QuotationForm{PolicyType: "life", Coverage: 1000, Duration: 1},
			wantStep: StepBeneficiaries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockPolicyClient{}
			client.On("CreateQuotation", mock.Anything, mock.Anything).
				Return(&model.Quotation{ID: "q1"}, nil)
			s := NewStore(client)

			step, err := SubmitQuotation(context.Background(), s, tt.form, fixedNow)
			assert.Equal(t, tt.wantStep, step)
			if tt.wantErr == nil {
				require.NoError(t, err)
				client.AssertNumberOfCalls(t, "CreateQuotation", 1)
				return
			}
			var fe FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, FieldErrors(tt.wantErr), fe)
			client.AssertNotCalled(t, "CreateQuotation", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitQuotation_SendsDerivedDraft(t *testing.T) {
	client := &mockPolicyClient{}
	client.On("CreateQuotation", mock.Anything, mock.MatchedBy(func(q model.Quotation) bool {
		return q.PolicyType == "health" &&
			q.Coverage == 100000 &&
			q.Premium == 167 &&
			q.Duration == 2 &&
			q.StartDate == "2026-03-01T09:00:00Z" &&
			q.EndDate == "2028-02-29T09:00:00Z" &&
			len(q.Benefits) == 3 && len(q.Terms) == 2
	})).Return(&model.Quotation{ID: "q1", Premium: 167}, nil)

	s := NewStore(client)
	step, err := SubmitQuotation(context.Background(), s,
		QuotationForm{PolicyType: "health", Coverage: 100000, Duration: 2}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, StepBeneficiaries, step)
	client.AssertExpectations(t)
}

func TestSubmitQuotation_BackendFailureStays(t *testing.T) {
	client := &mockPolicyClient{}
	client.On("CreateQuotation", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	s := NewStore(client)
	step, err := SubmitQuotation(context.Background(), s, DefaultQuotationForm().withType("life"), fixedNow)
	require.Error(t, err)
	assert.Equal(t, StepQuotation, step)
	assert.NotNil(t, s.Snapshot().Error)
}

func (f QuotationForm) withType(t string) QuotationForm {
	f.PolicyType = t
	return f
}

func TestAddBeneficiary_ShareLimit(t *testing.T) {
	s := NewStore(&mockPolicyClient{})

	_, err := AddBeneficiary(s, validBeneficiary(40))
	require.NoError(t, err)
	_, err = AddBeneficiary(s, validBeneficiary(40))
	require.NoError(t, err)

	_, err = AddBeneficiary(s, validBeneficiary(30))
	assert.ErrorIs(t, err, ErrShareExceeded)
	assert.Len(t, s.Snapshot().Beneficiaries, 2)

	b, err := AddBeneficiary(s, validBeneficiary(20))
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, model.GenderFemale, b.Gender)
	assert.Equal(t, 100, model.TotalPercentage(s.Snapshot().Beneficiaries))
}

func TestAddBeneficiary_Validation(t *testing.T) {
	s := NewStore(&mockPolicyClient{})

	form := validBeneficiary(0)
	form.Name = "A"
	form.IDNumber = "123"
	form.Gender = "other"

	_, err := AddBeneficiary(s, form)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldErrors{
		"name":       i18n.MsgNameMin,
		"idNumber":   i18n.MsgIDNumberInvalid,
		"gender":     i18n.MsgGenderRequired,
		"percentage": i18n.MsgPercentageRange,
	}, fe)
	assert.Empty(t, s.Snapshot().Beneficiaries)
}

func TestContinueFromBeneficiaries(t *testing.T) {
	t.Run("no beneficiaries", func(t *testing.T) {
		s := NewStore(&mockPolicyClient{})
		step, err := ContinueFromBeneficiaries(context.Background(), s)
		assert.ErrorIs(t, err, ErrNoBeneficiaries)
		assert.Equal(t, StepBeneficiaries, step)
	})

	t.Run("shares incomplete", func(t *testing.T) {
		client := &mockPolicyClient{}
		s := NewStore(client)
		s.SetQuotation(&model.Quotation{ID: "q1"})
		_, err := AddBeneficiary(s, validBeneficiary(40))
		require.NoError(t, err)

		step, err := ContinueFromBeneficiaries(context.Background(), s)
		assert.ErrorIs(t, err, ErrSharesIncomplete)
		assert.Equal(t, StepBeneficiaries, step)
		client.AssertNotCalled(t, "CreatePolicy", mock.Anything, mock.Anything)
	})

	t.Run("no quotation", func(t *testing.T) {
		s := NewStore(&mockPolicyClient{})
		_, err := AddBeneficiary(s, validBeneficiary(100))
		require.NoError(t, err)

		step, err := ContinueFromBeneficiaries(context.Background(), s)
		assert.ErrorIs(t, err, ErrNoQuotation)
		assert.Equal(t, StepQuotation, step)
	})

	t.Run("creates policy", func(t *testing.T) {
		client := &mockPolicyClient{}
		policy := &model.Policy{ID: "p1", Status: model.PolicyStatusPending}
		client.On("CreatePolicy", mock.Anything, mock.MatchedBy(func(req model.CreatePolicyRequest) bool {
			return req.QuotationID == "q1" && len(req.Beneficiaries) == 2
		})).Return(policy, nil)

		s := NewStore(client)
		s.SetQuotation(&model.Quotation{ID: "q1"})
		_, err := AddBeneficiary(s, validBeneficiary(60))
		require.NoError(t, err)
		_, err = AddBeneficiary(s, validBeneficiary(40))
		require.NoError(t, err)

		step, err := ContinueFromBeneficiaries(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, StepPayment, step)
		assert.Same(t, policy, s.Snapshot().CurrentPolicy)
		client.AssertExpectations(t)
	})

	t.Run("backend failure stays", func(t *testing.T) {
		client := &mockPolicyClient{}
		client.On("CreatePolicy", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

		s := NewStore(client)
		s.SetQuotation(&model.Quotation{ID: "q1"})
		_, err := AddBeneficiary(s, validBeneficiary(100))
		require.NoError(t, err)

		step, err := ContinueFromBeneficiaries(context.Background(), s)
		require.Error(t, err)
		assert.Equal(t, StepBeneficiaries, step)
		assert.Nil(t, s.Snapshot().CurrentPolicy)
	})
}

var testMethods = []model.PaymentMethod{
	{ID: "1", Type: model.PaymentMethodBalance, Name: "Balance"},
	{ID: "2", Type: model.PaymentMethodCard, Name: "Card"},
}

func TestSubmitPayment(t *testing.T) {
	t.Run("requires method", func(t *testing.T) {
		s := NewStore(&mockPolicyClient{})
		step, err := SubmitPayment(context.Background(), s, PaymentForm{}, testMethods)
		var fe FieldErrors
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, i18n.MsgPaymentMethodNeeded, fe["methodId"])
		assert.Equal(t, StepPayment, step)
	})

	t.Run("unknown method", func(t *testing.T) {
		s := NewStore(&mockPolicyClient{})
		_, err := SubmitPayment(context.Background(), s, PaymentForm{MethodID: "9"}, testMethods)
		assert.ErrorIs(t, err, ErrNoPaymentMethod)
	})

	t.Run("no policy", func(t *testing.T) {
		s := NewStore(&mockPolicyClient{})
		_, err := SubmitPayment(context.Background(), s, PaymentForm{MethodID: "1"}, testMethods)
		assert.ErrorIs(t, err, ErrNoPolicy)
	})

	t.Run("pays premium", func(t *testing.T) {
		client := &mockPolicyClient{}
		resp := &model.PaymentResponse{Success: true, PolicyID: "p1", Amount: 833, Status: model.PaymentStatusCompleted}
		client.On("ProcessPayment", mock.Anything, model.PaymentRequest{
			PolicyID: "p1",
			Amount:   833,
			Method:   testMethods[1],
		}).Return(resp, nil)

		s := NewStore(client)
		s.SetQuotation(&model.Quotation{ID: "q1", Premium: 833})
		s.SetCurrentPolicy(&model.Policy{ID: "p1"})

		step, err := SubmitPayment(context.Background(), s, PaymentForm{MethodID: "2"}, testMethods)
		require.NoError(t, err)
		assert.Equal(t, StepResult, step)
		assert.Same(t, resp, s.Snapshot().PaymentResponse)
		client.AssertExpectations(t)
	})
}

func TestEnterResult_FetchesOnce(t *testing.T) {
	client := &mockPolicyClient{}
	result := &model.PolicyResult{Policy: model.Policy{ID: "p1"}}
	client.On("GetPolicyResult", mock.Anything, "p1").Return(result, nil).Once()

	s := NewStore(client)
	require.NoError(t, EnterResult(context.Background(), s))
	client.AssertNotCalled(t, "GetPolicyResult", mock.Anything, mock.Anything)

	s.SetCurrentPolicy(&model.Policy{ID: "p1"})
	require.NoError(t, EnterResult(context.Background(), s))
	require.NoError(t, EnterResult(context.Background(), s))

	client.AssertNumberOfCalls(t, "GetPolicyResult", 1)
	assert.Same(t, result, s.Snapshot().PolicyResult)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		want    QuotationForm
		wantErr map[string]string
	}{
		{
			name:   "valid values are trimmed",
			values: url.Values{"policyType": {" life "}, "coverage": {"100000"}, "duration": {"2"}},
			want:   QuotationForm{PolicyType: "life", Coverage: 100000, Duration: 2},
		},
		{
			name:   "empty numbers stay zero",
			values: url.Values{"policyType": {"life"}, "coverage": {""}},
			want:   QuotationForm{PolicyType: "life"},
		},
		{
			name:    "unparsable coverage",
			values:  url.Values{"policyType": {"life"}, "coverage": {"abc"}, "duration": {"1"}},
			wantErr: map[string]string{"coverage": i18n.MsgCoverageMin},
		},
		{
			name:    "out of range coverage",
			values:  url.Values{"policyType": {"life"}, "coverage": {"1e400"}, "duration": {"1"}},
			wantErr: map[string]string{"coverage": i18n.MsgCoverageMin},
		},
		{
			name:    "unparsable duration",
			values:  url.Values{"policyType": {"life"}, "coverage": {"5000"}, "duration": {"one"}},
			wantErr: map[string]string{"duration": i18n.MsgDurationMin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form QuotationForm
			err := Decode(tt.values, &form)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, form)
				return
			}
			var fe FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, FieldErrors(tt.wantErr), fe)
		})
	}
}

func TestDecode_NaNFailsValidation(t *testing.T) {
	var form QuotationForm
	require.NoError(t, Decode(url.Values{"policyType": {"life"}, "coverage": {"NaN"}, "duration": {"1"}}, &form))

	var fe FieldErrors
	require.ErrorAs(t, Validate(form), &fe)
	assert.Equal(t, i18n.MsgCoverageMin, fe["coverage"])
}
