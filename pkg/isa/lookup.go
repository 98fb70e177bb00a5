package isa

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/quote-wizard/internal/model"
)

// LookupClient reads reference-data enumerations.
type LookupClient interface {
	// GetLookupItems returns the items of one category in backend order.
	GetLookupItems(ctx context.Context, category model.LookupCategory) ([]model.LookupItem, error)
	GetPolicyTypes(ctx context.Context) ([]model.LookupItem, error)
	GetBeneficiaryRelations(ctx context.Context) ([]model.LookupItem, error)
	GetPaymentMethods(ctx context.Context) ([]model.LookupItem, error)
	GetCoverageAmounts(ctx context.Context) ([]model.LookupItem, error)
	GetPolicyDurations(ctx context.Context) ([]model.LookupItem, error)
}

type lookupClient struct {
	t *transport
}

// NewLookupClient creates a LookupClient against baseURL.
func NewLookupClient(baseURL string, opts ...Option) LookupClient {
	return &lookupClient{t: newTransport(baseURL, opts...)}
}

func (c *lookupClient) GetLookupItems(ctx context.Context, category model.LookupCategory) ([]model.LookupItem, error) {
	if !category.Valid() {
		return nil, eris.Errorf("isa: unknown lookup category %q", category)
	}
	var items []model.LookupItem
	if err := c.t.get(ctx, "/lookup/"+string(category), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *lookupClient) GetPolicyTypes(ctx context.Context) ([]model.LookupItem, error) {
	return c.GetLookupItems(ctx, model.LookupPolicyTypes)
}

func (c *lookupClient) GetBeneficiaryRelations(ctx context.Context) ([]model.LookupItem, error) {
	return c.GetLookupItems(ctx, model.LookupBeneficiaryRelations)
}

func (c *lookupClient) GetPaymentMethods(ctx context.Context) ([]model.LookupItem, error) {
	return c.GetLookupItems(ctx, model.LookupPaymentMethods)
}

func (c *lookupClient) GetCoverageAmounts(ctx context.Context) ([]model.LookupItem, error) {
	return c.GetLookupItems(ctx, model.LookupCoverageAmounts)
}

func (c *lookupClient) GetPolicyDurations(ctx context.Context) ([]model.LookupItem, error) {
	return c.GetLookupItems(ctx, model.LookupPolicyDurations)
}
