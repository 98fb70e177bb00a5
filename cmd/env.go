package main

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/sells-group/quote-wizard/internal/config"
	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/resilience"
	"github.com/sells-group/quote-wizard/internal/store"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

// clients holds the backend clients built from config. Both share one rate
// limiter so the configured rate bounds all outgoing traffic.
type clients struct {
	Lookup isa.LookupClient
	Policy isa.PolicyClient
}

func clientOptions(api config.APIConfig) []isa.Option {
	retry := resilience.QueryRetryConfig()
	retry.Retries = api.ReadRetries

	opts := []isa.Option{
		isa.WithTimeout(api.Timeout()),
		isa.WithReadRetry(retry),
	}
	if api.RateLimit > 0 {
		opts = append(opts, isa.WithRateLimiter(rate.NewLimiter(rate.Limit(api.RateLimit), max(api.RateBurst, 1))))
	}
	return opts
}

func newClients(api config.APIConfig) clients {
	opts := clientOptions(api)
	return clients{
		Lookup: isa.NewLookupClient(api.BaseURL, opts...),
		Policy: isa.NewPolicyClient(api.BaseURL, opts...),
	}
}

func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL, &store.PoolConfig{
		MaxConns: cfg.Store.MaxConns,
		MinConns: cfg.Store.MinConns,
	})
}

func localizer() *i18n.Localizer {
	return i18n.New(cfg.UI.Locale)
}
