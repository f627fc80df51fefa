package sonnys_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/washmetrics/sonnys-go/pkg/sonnys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		kind   sonnys.ErrorKind
	}{
		{400, sonnys.ErrorKindValidation},
		{403, sonnys.ErrorKindAuth},
		{404, sonnys.ErrorKindNotFound},
		{422, sonnys.ErrorKindValidation},
		{429, sonnys.ErrorKindRateLimit},
		{500, sonnys.ErrorKindServer},
		{502, sonnys.ErrorKindServer},
		{503, sonnys.ErrorKindServer},
		{599, sonnys.ErrorKindServer},
		{401, sonnys.ErrorKindGeneric},
		{418, sonnys.ErrorKindGeneric},
	}

	for _, testCase := range tests {
		t.Run(fmt.Sprintf("%d", testCase.status), func(t *testing.T) {
			assert.Equal(t, testCase.kind, sonnys.KindForStatus(testCase.status))
		})
	}
}

func TestNewStatusError(t *testing.T) {
	t.Run("typed error body", func(t *testing.T) {
		body := []byte(`{"type": "BadClientCredentialsError", "message": "Invalid credentials"}`)

		statusErr := sonnys.NewStatusError(403, body)
		assert.Equal(t, sonnys.ErrorKindAuth, statusErr.Kind)
		assert.Equal(t, 403, statusErr.StatusCode)
		assert.Equal(t, "BadClientCredentialsError", statusErr.ErrorType)
		assert.Equal(t, "Invalid credentials", statusErr.Message)
	})

	t.Run("plural messages joined", func(t *testing.T) {
		body := []byte(`{"type": "PayloadValidationError", "messages": ["startDate is required", "endDate is required"]}`)

		statusErr := sonnys.NewStatusError(422, body)
		assert.Equal(t, sonnys.ErrorKindValidation, statusErr.Kind)
		assert.Equal(t, "startDate is required; endDate is required", statusErr.Message)
	})

	t.Run("non-JSON body degrades to raw text", func(t *testing.T) {
		statusErr := sonnys.NewStatusError(500, []byte("<html>Internal Server Error</html>"))
		assert.Equal(t, sonnys.ErrorKindServer, statusErr.Kind)
		assert.Equal(t, "Unknown", statusErr.ErrorType)
		assert.Equal(t, "<html>Internal Server Error</html>", statusErr.Message)
	})

	t.Run("empty body degrades to status code", func(t *testing.T) {
		statusErr := sonnys.NewStatusError(503, nil)
		assert.Equal(t, "HTTP 503", statusErr.Message)
		assert.Equal(t, "Unknown", statusErr.ErrorType)
	})

	t.Run("JSON object without message", func(t *testing.T) {
		statusErr := sonnys.NewStatusError(404, []byte(`{"type": "EntityNotFoundError"}`))
		assert.Equal(t, "HTTP 404", statusErr.Message)
		assert.Equal(t, "EntityNotFoundError", statusErr.ErrorType)
	})
}

func TestErrorKindHelpers(t *testing.T) {
	rateLimited := sonnys.NewStatusError(429, []byte(`{"type": "RequestRateExceedError", "message": "slow down"}`))
	wrapped := fmt.Errorf("listing sites: %w", rateLimited)

	assert.True(t, sonnys.IsRateLimit(wrapped))
	assert.False(t, sonnys.IsAuth(wrapped))
	assert.False(t, sonnys.IsRateLimit(errors.New("plain")))

	notFound := sonnys.NewStatusError(404, nil)
	assert.True(t, sonnys.IsNotFound(notFound))

	server := sonnys.NewStatusError(500, nil)
	assert.True(t, sonnys.IsServer(server))

	validation := sonnys.NewStatusError(400, nil)
	assert.True(t, sonnys.IsValidation(validation))
}

func TestIsTimeout(t *testing.T) {
	timeout := &sonnys.ConnectionError{Timeout: true, Err: errors.New("deadline exceeded")}
	assert.True(t, sonnys.IsTimeout(fmt.Errorf("fetching: %w", timeout)))

	refused := &sonnys.ConnectionError{Timeout: false, Err: errors.New("connection refused")}
	assert.False(t, sonnys.IsTimeout(refused))
}

func TestConnectionError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	connErr := &sonnys.ConnectionError{Err: inner}

	require.ErrorIs(t, connErr, inner)
	assert.Contains(t, connErr.Error(), "connection reset")
}

func TestJobTimeoutError_Message(t *testing.T) {
	err := &sonnys.JobTimeoutError{Hash: "abc123", Timeout: 300}
	assert.Contains(t, err.Error(), "abc123")
	assert.Contains(t, err.Error(), "300")
}
