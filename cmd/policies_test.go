package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quote-wizard/internal/resilience"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

func policiesBackend(t *testing.T, status int, body string) isa.PolicyClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/policies/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return isa.NewPolicyClient(srv.URL, isa.WithReadRetry(resilience.NoRetry()))
}

const policiesBody = `[{"id":"p1","policyNumber":"POL-1","status":"active","createdAt":"2026-01-02T00:00:00Z",
"quotation":{"policyType":"life","coverage":100000,"premium":83}}]`

func TestRunPolicies_Table(t *testing.T) {
	client := policiesBackend(t, http.StatusOK, policiesBody)
	var out bytes.Buffer

	require.NoError(t, runPolicies(context.Background(), &out, client, "table"))
	assert.Contains(t, out.String(), "NUMBER")
	assert.Contains(t, out.String(), "POL-1")
	assert.Contains(t, out.String(), "100000")
	assert.Contains(t, out.String(), "active")
}

func TestRunPolicies_Empty(t *testing.T) {
	client := policiesBackend(t, http.StatusOK, `[]`)
	var out bytes.Buffer

	require.NoError(t, runPolicies(context.Background(), &out, client, "table"))
	assert.Equal(t, "No policies found.\n", out.String())
}

func TestRunPolicies_YAML(t *testing.T) {
	client := policiesBackend(t, http.StatusOK, policiesBody)
	var out bytes.Buffer

	require.NoError(t, runPolicies(context.Background(), &out, client, "yaml"))
	assert.Contains(t, out.String(), "policyNumber: POL-1")
}

func TestRunPolicies_Error(t *testing.T) {
	client := policiesBackend(t, http.StatusForbidden, `{"code":"FORBIDDEN","message":"not allowed"}`)
	var out bytes.Buffer

	err := runPolicies(context.Background(), &out, client, "table")
	require.Error(t, err)
	apiErr, ok := isa.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
}
