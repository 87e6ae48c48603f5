package debox

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		Method:     "POST",
		URL:        "https://open.debox.pro/openapi/send_robot_message",
		StatusCode: 403,
		Body:       "forbidden",
	}

	assert.Equal(t, "debox: POST https://open.debox.pro/openapi/send_robot_message: status 403: forbidden", err.Error())
}

func TestIsAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectedOK bool
	}{
		{name: "direct", err: &APIError{StatusCode: 500}, expectedOK: true},
		{name: "wrapped", err: fmt.Errorf("relay: %w", &APIError{StatusCode: 500}), expectedOK: true},
		{name: "missing key", err: ErrMissingAPIKey, expectedOK: false},
		{name: "plain", err: errors.New("boom"), expectedOK: false},
		{name: "nil", err: nil, expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr, ok := IsAPIError(tt.err)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, 500, apiErr.StatusCode)
			} else {
				assert.Nil(t, apiErr)
			}
		})
	}
}
