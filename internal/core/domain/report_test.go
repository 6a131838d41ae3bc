package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-20", r.StartDate())
	assert.Equal(t, "2025-05-20", r.EndDate())

	r, err = NewDateRange("2025-05-01", "2025-05-01", now)
	require.NoError(t, err)
	assert.Equal(t, r.StartDate(), r.EndDate())

	_, err = NewDateRange("2025-05-02", "2025-05-01", now)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange("05/01/2025", "", now)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "startDate")
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("list: %w", ErrServerUnreachable), msgUnreachable},
		{fmt.Errorf("toggle: %w", ErrUnauthorized), msgUnauthorized},
		{&APIError{Status: 400, Message: "Name taken"}, "Name taken"},
		{&APIError{Status: 500}, "Failed"},
		{ValidationErrors{"name": "x"}, msgValidation},
		{ErrNotConfirmed, ErrNotConfirmed.Error()},
		{errors.New("boom"), "Failed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err, "Failed"))
	}
}
