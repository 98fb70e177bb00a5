package lookup

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/quote-wizard/internal/model"
)

type mockLookupClient struct {
	mock.Mock
}

func (m *mockLookupClient) GetLookupItems(ctx context.Context, category model.LookupCategory) ([]model.LookupItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LookupItem), args.Error(1)
}

func (m *mockLookupClient) GetPolicyTypes(ctx context.Context) ([]model.LookupItem, error) {
	return m.GetLookupItems(ctx, model.LookupPolicyTypes)
}

func (m *mockLookupClient) GetBeneficiaryRelations(ctx context.Context) ([]model.LookupItem, error) {
	return m.GetLookupItems(ctx, model.LookupBeneficiaryRelations)
}

func (m *mockLookupClient) GetPaymentMethods(ctx context.Context) ([]model.LookupItem, error) {
	return m.GetLookupItems(ctx, model.LookupPaymentMethods)
}

func (m *mockLookupClient) GetCoverageAmounts(ctx context.Context) ([]model.LookupItem, error) {
	return m.GetLookupItems(ctx, model.LookupCoverageAmounts)
}

func (m *mockLookupClient) GetPolicyDurations(ctx context.Context) ([]model.LookupItem, error) {
	return m.GetLookupItems(ctx, model.LookupPolicyDurations)
}
