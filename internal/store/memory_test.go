package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Sessions(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st.nowFunc = func() time.Time { return now }

	state := []byte(`{"v":1}`)
	require.NoError(t, st.SaveSession(ctx, "a", state, time.Minute))
	require.NoError(t, st.SaveSession(ctx, "b", []byte(`{}`), time.Hour))
	state[0] = 'x'

	data, err := st.LoadSession(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(data))

	now = now.Add(2 * time.Minute)
	data, err = st.LoadSession(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, data)

	n, err := st.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, st.DeleteSession(ctx, "b"))
	assert.ErrorIs(t, st.DeleteSession(ctx, "b"), ErrNotFound)
	assert.NoError(t, st.Close())
}
