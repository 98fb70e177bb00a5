package isa

import (
	"context"
	"net/url"

	"github.com/sells-group/quote-wizard/internal/model"
)

// PolicyClient drives the policy lifecycle on the backend. No credentials
// are attached to requests.
type PolicyClient interface {
	CreateQuotation(ctx context.Context, draft model.Quotation) (*model.Quotation, error)
	GetQuotation(ctx context.Context, id string) (*model.Quotation, error)
	CreatePolicy(ctx context.Context, req model.CreatePolicyRequest) (*model.Policy, error)
	GetPolicy(ctx context.Context, id string) (*model.Policy, error)
	// GetUserPolicies lists the policies of the current user.
	GetUserPolicies(ctx context.Context) ([]model.Policy, error)
	ProcessPayment(ctx context.Context, req model.PaymentRequest) (*model.PaymentResponse, error)
	// GetPolicyResult returns the policy with its payment status and document.
	GetPolicyResult(ctx context.Context, policyID string) (*model.PolicyResult, error)
}

type policyClient struct {
	t *transport
}

// NewPolicyClient creates a PolicyClient against baseURL.
func NewPolicyClient(baseURL string, opts ...Option) PolicyClient {
	return &policyClient{t: newTransport(baseURL, opts...)}
}

func (c *policyClient) CreateQuotation(ctx context.Context, draft model.Quotation) (*model.Quotation, error) {
	var q model.Quotation
	if err := c.t.post(ctx, "/policies/quotations", draft, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *policyClient) GetQuotation(ctx context.Context, id string) (*model.Quotation, error) {
	var q model.Quotation
	if err := c.t.get(ctx, "/policies/quotations/"+url.PathEscape(id), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *policyClient) CreatePolicy(ctx context.Context, req model.CreatePolicyRequest) (*model.Policy, error) {
	var p model.Policy
	if err := c.t.post(ctx, "/policies", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *policyClient) GetPolicy(ctx context.Context, id string) (*model.Policy, error) {
	var p model.Policy
	if err := c.t.get(ctx, "/policies/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *policyClient) GetUserPolicies(ctx context.Context) ([]model.Policy, error) {
	var policies []model.Policy
	if err := c.t.get(ctx, "/policies/user", &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

func (c *policyClient) ProcessPayment(ctx context.Context, req model.PaymentRequest) (*model.PaymentResponse, error) {
	var resp model.PaymentResponse
	if err := c.t.post(ctx, "/policies/"+url.PathEscape(req.PolicyID)+"/payment", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *policyClient) GetPolicyResult(ctx context.Context, policyID string) (*model.PolicyResult, error) {
	var r model.PolicyResult
	if err := c.t.get(ctx, "/policies/"+url.PathEscape(policyID)+"/result", &r); err != nil {
		return nil, err
	}
	return &r, nil
}
