// Package wizard holds the in-progress quotation transaction of one wizard
// session and the rules for moving between its four steps.
package wizard

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

// State is the full record of a wizard session.
type State struct {
	Quotation       *model.Quotation       `json:"quotation"`
	Quotations      []model.Quotation      `json:"quotations"`
	CurrentPolicy   *model.Policy          `json:"currentPolicy"`
	Policies        []model.Policy         `json:"policies"`
	Beneficiaries   []model.Beneficiary    `json:"beneficiaries"`
	PaymentResponse *model.PaymentResponse `json:"paymentResponse"`
	PolicyResult    *model.PolicyResult    `json:"policyResult"`
	IsLoading       bool                   `json:"isLoading"`
	Error           *string                `json:"error"`
}

// InitialState returns the empty record a session starts from.
func InitialState() State {
	return State{
		Quotations:    []model.Quotation{},
		Policies:      []model.Policy{},
		Beneficiaries: []model.Beneficiary{},
	}
}

func (s State) clone() State {
	s.Quotations = slices.Clone(s.Quotations)
	s.Policies = slices.Clone(s.Policies)
	s.Beneficiaries = slices.Clone(s.Beneficiaries)
	if s.Error != nil {
		msg := *s.Error
		s.Error = &msg
	}
	return s
}

// Store is the state container of one wizard session. Fields change only
// through its action methods.
type Store struct {
	client isa.PolicyClient
	loc    *i18n.Localizer
	newID  func() string

	mu       sync.Mutex
	state    State
	inflight int
	version  uint64
	onChange func(State)

	// notifyMu orders change notifications; saved is the last version
	// handed to onChange.
	notifyMu sync.Mutex
	saved    uint64

	calls singleflight.Group
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLocalizer sets the locale of stored error messages.
func WithLocalizer(l *i18n.Localizer) StoreOption {
	return func(s *Store) {
		s.loc = l
	}
}

// WithOnChange registers a callback invoked with a snapshot after every
// transition.
func WithOnChange(fn func(State)) StoreOption {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithIDGenerator overrides beneficiary id generation.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		s.newID = fn
	}
}

// NewStore creates a Store in the initial state.
func NewStore(client isa.PolicyClient, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		loc:    i18n.New("en"),
		newID:  func() string { return uuid.New().String() },
		state:  InitialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// update applies fn under the lock and notifies the change hook. Hook calls
// never overlap, and a snapshot older than one already delivered is dropped.
func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	s.version++
	version := s.version
	snap := s.state.clone()
	hook := s.onChange
	s.mu.Unlock()

	if hook == nil {
		return
	}
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if version <= s.saved {
		return
	}
	s.saved = version
	hook(snap)
}

// action runs a backend call with the loading/error protocol shared by every
// remote action. A non-empty key coalesces concurrent identical calls.
func action[T any](ctx context.Context, s *Store, name, key, failMsg string, call func(context.Context) (T, error), apply func(*State, T)) error {
	s.update(func(st *State) {
		s.inflight++
		st.IsLoading = true
		st.Error = nil
	})

	var (
		val T
		err error
	)
	if key == "" {
		val, err = call(ctx)
	} else {
		var res any
		res, err, _ = s.calls.Do(name+":"+key, func() (any, error) {
			return call(ctx)
		})
		if err == nil {
			val = res.(T)
		}
	}

	s.update(func(st *State) {
		s.inflight--
		st.IsLoading = s.inflight > 0
		if err != nil {
			msg := s.errorText(err, failMsg)
			st.Error = &msg
			return
		}
		apply(st, val)
		st.Error = nil
	})

	if err != nil {
		zap.L().Warn("wizard action failed",
			zap.String("action", name),
			zap.Error(err),
		)
	}
	return err
}

// errorText prefers a message written by the backend and falls back to the
// localized default of the action. Transport errors are never shown.
func (s *Store) errorText(err error, failMsg string) string {
	if apiErr, ok := isa.AsAPIError(err); ok {
		if msg := apiErr.ServerMessage(); msg != "" {
			return msg
		}
	}
	return s.loc.T(failMsg)
}

// CreateQuotation submits a quotation draft and stores the priced result.
// Concurrent submissions race; the last one to finish wins.
func (s *Store) CreateQuotation(ctx context.Context, draft model.Quotation) error {
	return action(ctx, s, "create_quotation", "", i18n.MsgCreateQuotationFailed,
		func(ctx context.Context) (*model.Quotation, error) {
			return s.client.CreateQuotation(ctx, draft)
		},
		func(st *State, q *model.Quotation) {
			st.Quotation = q
		},
	)
}

// GetQuotation loads a quotation by id into the session.
func (s *Store) GetQuotation(ctx context.Context, id string) error {
	return action(ctx, s, "get_quotation", id, i18n.MsgGetQuotationFailed,
		func(ctx context.Context) (*model.Quotation, error) {
			return s.client.GetQuotation(ctx, id)
		},
		func(st *State, q *model.Quotation) {
			st.Quotation = q
		},
	)
}

// SetQuotation replaces the current quotation.
func (s *Store) SetQuotation(q *model.Quotation) {
	s.update(func(st *State) {
		st.Quotation = q
	})
}

// CreatePolicy issues a policy for the quotation with the given beneficiaries.
func (s *Store) CreatePolicy(ctx context.Context, quotationID string, beneficiaries []model.Beneficiary) error {
	req := model.CreatePolicyRequest{
		QuotationID:   quotationID,
		Beneficiaries: slices.Clone(beneficiaries),
	}
	return action(ctx, s, "create_policy", quotationID, i18n.MsgCreatePolicyFailed,
		func(ctx context.Context) (*model.Policy, error) {
			return s.client.CreatePolicy(ctx, req)
		},
		func(st *State, p *model.Policy) {
			st.CurrentPolicy = p
		},
	)
}

// GetPolicy loads a policy by id as the current policy.
func (s *Store) GetPolicy(ctx context.Context, id string) error {
	return action(ctx, s, "get_policy", id, i18n.MsgGetPolicyFailed,
		func(ctx context.Context) (*model.Policy, error) {
			return s.client.GetPolicy(ctx, id)
		},
		func(st *State, p *model.Policy) {
			st.CurrentPolicy = p
		},
	)
}

// GetUserPolicies loads the current user's policies.
func (s *Store) GetUserPolicies(ctx context.Context) error {
	return action(ctx, s, "get_user_policies", "user", i18n.MsgGetPoliciesFailed,
		func(ctx context.Context) ([]model.Policy, error) {
			return s.client.GetUserPolicies(ctx)
		},
		func(st *State, list []model.Policy) {
			if list == nil {
				list = []model.Policy{}
			}
			st.Policies = list
		},
	)
}

// SetCurrentPolicy replaces the current policy.
func (s *Store) SetCurrentPolicy(p *model.Policy) {
	s.update(func(st *State) {
		st.CurrentPolicy = p
	})
}

// ProcessPayment pays a policy premium. Concurrent payments for the same
// policy share one backend call.
func (s *Store) ProcessPayment(ctx context.Context, req model.PaymentRequest) error {
	return action(ctx, s, "process_payment", req.PolicyID, i18n.MsgPaymentFailed,
		func(ctx context.Context) (*model.PaymentResponse, error) {
			return s.client.ProcessPayment(ctx, req)
		},
		func(st *State, resp *model.PaymentResponse) {
			st.PaymentResponse = resp
		},
	)
}

// GetPolicyResult loads the consolidated result of a paid policy.
func (s *Store) GetPolicyResult(ctx context.Context, policyID string) error {
	return action(ctx, s, "get_policy_result", policyID, i18n.MsgPolicyResultFailed,
		func(ctx context.Context) (*model.PolicyResult, error) {
			return s.client.GetPolicyResult(ctx, policyID)
		},
		func(st *State, r *model.PolicyResult) {
			st.PolicyResult = r
		},
	)
}

// AddBeneficiary appends b under a freshly generated id and returns the
// stored copy.
func (s *Store) AddBeneficiary(b model.Beneficiary) model.Beneficiary {
	b.ID = s.newID()
	s.update(func(st *State) {
		st.Beneficiaries = append(slices.Clone(st.Beneficiaries), b)
	})
	return b
}

// UpdateBeneficiary patches the beneficiary with the given id. Unknown ids
// are ignored.
func (s *Store) UpdateBeneficiary(id string, patch model.BeneficiaryPatch) {
	s.update(func(st *State) {
		list := slices.Clone(st.Beneficiaries)
		for i := range list {
			if list[i].ID == id {
				list[i] = patch.Apply(list[i])
			}
		}
		st.Beneficiaries = list
	})
}

// RemoveBeneficiary drops the beneficiary with the given id.
func (s *Store) RemoveBeneficiary(id string) {
	s.update(func(st *State) {
		st.Beneficiaries = slices.DeleteFunc(slices.Clone(st.Beneficiaries), func(b model.Beneficiary) bool {
			return b.ID == id
		})
	})
}

// SetBeneficiaries replaces the working list.
func (s *Store) SetBeneficiaries(list []model.Beneficiary) {
	list = slices.Clone(list)
	if list == nil {
		list = []model.Beneficiary{}
	}
	s.update(func(st *State) {
		st.Beneficiaries = list
	})
}

// ClearBeneficiaries empties the working list.
func (s *Store) ClearBeneficiaries() {
	s.SetBeneficiaries(nil)
}

// ClearError drops the stored error message.
func (s *Store) ClearError() {
	s.update(func(st *State) {
		st.Error = nil
	})
}

// Reset restores the initial empty state.
func (s *Store) Reset() {
	s.update(func(st *State) {
		*st = InitialState()
		st.IsLoading = s.inflight > 0
	})
}

// Restore replaces the state with a persisted snapshot. Loading is cleared
// since no call survives a restore.
func (s *Store) Restore(st State) {
	st = st.clone()
	if st.Quotations == nil {
		st.Quotations = []model.Quotation{}
	}
	if st.Policies == nil {
		st.Policies = []model.Policy{}
	}
	if st.Beneficiaries == nil {
		st.Beneficiaries = []model.Beneficiary{}
	}
	st.IsLoading = false

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
