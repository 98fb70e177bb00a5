// Package lookup loads the reference data the wizard steps render: policy
// types, coverage amounts, durations, beneficiary relations and payment
// methods.
package lookup

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

// Set is one load of every category.
type Set struct {
	PolicyTypes          []model.LookupItem `json:"policyTypes"`
	CoverageAmounts      []model.LookupItem `json:"coverageAmounts"`
	Durations            []model.LookupItem `json:"durations"`
	BeneficiaryRelations []model.LookupItem `json:"beneficiaryRelations"`
	PaymentMethodItems   []model.LookupItem `json:"paymentMethods"`

	// Err is the first load failure, or empty when every category loaded.
	Err string `json:"error,omitempty"`
}

// Degraded reports whether any category was served from fallbacks.
func (s *Set) Degraded() bool {
	return s.Err != ""
}

// Items returns the items of a category.
func (s *Set) Items(category model.LookupCategory) []model.LookupItem {
	switch category {
	case model.LookupPolicyTypes:
		return s.PolicyTypes
	case model.LookupCoverageAmounts:
		return s.CoverageAmounts
	case model.LookupPolicyDurations:
		return s.Durations
	case model.LookupBeneficiaryRelations:
		return s.BeneficiaryRelations
	case model.LookupPaymentMethods:
		return s.PaymentMethodItems
	default:
		return nil
	}
}

func (s *Set) set(category model.LookupCategory, items []model.LookupItem) {
	switch category {
	case model.LookupPolicyTypes:
		s.PolicyTypes = items
	case model.LookupCoverageAmounts:
		s.CoverageAmounts = items
	case model.LookupPolicyDurations:
		s.Durations = items
	case model.LookupBeneficiaryRelations:
		s.BeneficiaryRelations = items
	case model.LookupPaymentMethods:
		s.PaymentMethodItems = items
	}
}

// PaymentMethods converts the payment method items to selectable methods.
func (s *Set) PaymentMethods() []model.PaymentMethod {
	methods := make([]model.PaymentMethod, 0, len(s.PaymentMethodItems))
	for _, item := range s.PaymentMethodItems {
		methods = append(methods, model.PaymentMethod{
			ID:      item.ID,
			Type:    model.PaymentMethodType(item.Code),
			Name:    item.Name,
			Details: item.Description,
		})
	}
	return methods
}

// Catalog loads lookup sets and caches complete ones.
type Catalog struct {
	client isa.LookupClient
	ttl    time.Duration

	mu       sync.Mutex
	cached   *Set
	loadedAt time.Time

	nowFunc func() time.Time
}

// NewCatalog creates a Catalog. A ttl of zero disables caching.
func NewCatalog(client isa.LookupClient, ttl time.Duration) *Catalog {
	return &Catalog{client: client, ttl: ttl, nowFunc: time.Now}
}

// Load returns every category. Categories that fail to load are replaced by
// their fallback items; such a degraded set is returned but not cached.
func (c *Catalog) Load(ctx context.Context) *Set {
	if s := c.fromCache(); s != nil {
		return s
	}

	set := &Set{}
	var (
		mu       sync.Mutex
		firstErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range model.LookupCategories {
		g.Go(func() error {
			items, err := c.client.GetLookupItems(gctx, category)
			if err != nil {
				zap.L().Warn("lookup failed, using fallback",
					zap.String("category", string(category)),
					zap.Error(err),
				)
				items = Fallback(category)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			set.set(category, items)
			return nil
		})
	}
	_ = g.Wait()

	if firstErr != nil {
		set.Err = errorMessage(firstErr)
		return set
	}

	c.mu.Lock()
	c.cached = set
	c.loadedAt = c.nowFunc()
	c.mu.Unlock()
	return set
}

// Category returns the items of one category, falling back on failure.
func (c *Catalog) Category(ctx context.Context, category model.LookupCategory) ([]model.LookupItem, error) {
	if s := c.fromCache(); s != nil {
		return s.Items(category), nil
	}
	items, err := c.client.GetLookupItems(ctx, category)
	if err != nil {
		return Fallback(category), err
	}
	return items, nil
}

// Invalidate drops the cached set.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

func (c *Catalog) fromCache() *Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil || c.ttl <= 0 {
		return nil
	}
	if c.nowFunc().Sub(c.loadedAt) >= c.ttl {
		c.cached = nil
		return nil
	}
	return c.cached
}

func errorMessage(err error) string {
	if apiErr, ok := isa.AsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
