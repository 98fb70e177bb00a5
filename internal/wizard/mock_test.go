package wizard

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/quote-wizard/internal/model"
)

type mockPolicyClient struct {
	mock.Mock
}

func (m *mockPolicyClient) CreateQuotation(ctx context.Context, draft model.Quotation) (*model.Quotation, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quotation), args.Error(1)
}

func (m *mockPolicyClient) GetQuotation(ctx context.Context, id string) (*model.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quotation), args.Error(1)
}

func (m *mockPolicyClient) CreatePolicy(ctx context.Context, req model.CreatePolicyRequest) (*model.Policy, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *mockPolicyClient) GetPolicy(ctx context.Context, id string) (*model.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *mockPolicyClient) GetUserPolicies(ctx context.Context) ([]model.Policy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *mockPolicyClient) ProcessPayment(ctx context.Context, req model.PaymentRequest) (*model.PaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentResponse), args.Error(1)
}

func (m *mockPolicyClient) GetPolicyResult(ctx context.Context, policyID string) (*model.PolicyResult, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PolicyResult), args.Error(1)
}
