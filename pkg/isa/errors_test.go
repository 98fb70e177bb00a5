package isa

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quote-wizard/internal/resilience"
)

func TestResponseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantMsg  string
		fromSrv  bool
		retry    bool
	}{
		{"code and message", 409, `{"code":"QUOTATION_EXPIRED","message":"quotation expired"}`, "QUOTATION_EXPIRED", "quotation expired", true, false},
		{"message only", 422, `{"message":"invalid coverage"}`, CodeUnknownError, "invalid coverage", true, false},
		{"code only", 400, `{"code":"BAD_INPUT"}`, "BAD_INPUT", "Request failed with status code 400", false, false},
		{"empty body", 500, ``, CodeUnknownError, "Request failed with status code 500", false, true},
		{"html body", 502, `<html>bad gateway</html>`, CodeUnknownError, "Request failed with status code 502", false, true},
		{"server message on 503", 503, `{"message":"maintenance"}`, CodeUnknownError, "maintenance", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := responseError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.fromSrv, err.FromServer)
			assert.Equal(t, tt.retry, err.Retryable())
			if tt.fromSrv {
				assert.Equal(t, tt.wantMsg, err.ServerMessage())
			} else {
				assert.Empty(t, err.ServerMessage())
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := networkError(cause)

	assert.Equal(t, CodeNetworkError, err.Code)
	assert.Equal(t, cause.Error(), err.Message)
	assert.True(t, err.Retryable())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "isa: NETWORK_ERROR: dial tcp: connection refused", err.Error())

	assert.Empty(t, err.ServerMessage())

	var te *resilience.TransientError
	assert.ErrorAs(t, err, &te)

	assert.Equal(t, "Network error occurred", networkError(nil).Message)
	assert.True(t, networkError(nil).Retryable())
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "read deadline exceeded" }
func (timeoutErr) Timeout() bool { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, isRetryable(networkError(errors.New("connection refused"))))
	assert.True(t, isRetryable(responseError(503, nil)))
	assert.False(t, isRetryable(responseError(404, nil)))

	assert.True(t, isRetryable(fmt.Errorf("isa: decode: %w", timeoutErr{})))
	assert.True(t, isRetryable(resilience.NewTransientError(errors.New("flaky"), 0)))
	assert.False(t, isRetryable(errors.New("isa: unmarshal GET /lookup/x response")))
}

func TestAsAPIError_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("wizard: create policy: %w", responseError(404, nil))
	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.False(t, apiErr.Retryable())

	_, ok = AsAPIError(errors.New("plain"))
	assert.False(t, ok)
}
