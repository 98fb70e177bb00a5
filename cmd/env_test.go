package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quote-wizard/internal/config"
	"github.com/sells-group/quote-wizard/internal/store"
)

func TestClientOptions(t *testing.T) {
	api := config.APIConfig{BaseURL: "https://api.example.com", TimeoutSecs: 5, ReadRetries: 1}
	assert.Len(t, clientOptions(api), 2)

	api.RateLimit = 10
	assert.Len(t, clientOptions(api), 3)

	c := newClients(api)
	assert.NotNil(t, c.Lookup)
	assert.NotNil(t, c.Policy)
}

func TestInitStore_Memory(t *testing.T) {
	orig := cfg
	t.Cleanup(func() { cfg = orig })
	cfg = &config.Config{Store: config.StoreConfig{Driver: "memory"}}

	st, err := initStore(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)
	assert.NoError(t, st.Migrate(context.Background()))
}
