package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"event-hotels-backend/internal/service"
)

func TestStatusTable(t *testing.T) {
	table := DefaultStatusTable()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("%w: no rooms for hotel 1", service.ErrNotFound), http.StatusNotFound},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized},
		{"bad request", fmt.Errorf("%w: bad id", service.ErrBadRequest), http.StatusBadRequest},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, table.Status(tc.err))
		})
	}
}

func TestStatusTable_CustomRulesAndZeroDefault(t *testing.T) {
	errGone := errors.New("gone")
	table := StatusTable{Rules: []StatusRule{{Err: errGone, Status: http.StatusGone}}}

	assert.Equal(t, http.StatusGone, table.Status(fmt.Errorf("x: %w", errGone)))
	assert.Equal(t, http.StatusInternalServerError, table.Status(service.ErrNotFound))
}
