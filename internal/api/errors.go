package api

import (
	"errors"
	"net/http"

	"event-hotels-backend/internal/service"
)

// StatusRule maps one error kind to an HTTP status.
type StatusRule struct {
	Err    error
	Status int
}

// StatusTable translates service errors into HTTP statuses. Rules are checked in
// order with errors.Is; anything unmatched gets Default.
type StatusTable struct {
	Rules   []StatusRule
	Default int
}

// DefaultStatusTable is shared by every hotel handler.
func DefaultStatusTable() StatusTable {
	return StatusTable{
		Rules: []StatusRule{
			{Err: service.ErrNotFound, Status: http.StatusNotFound},
			{Err: service.ErrUnauthorized, Status: http.StatusUnauthorized},
			{Err: service.ErrBadRequest, Status: http.StatusBadRequest},
		},
		Default: http.StatusInternalServerError,
	}
}

func (t StatusTable) Status(err error) int {
	for _, rule := range t.Rules {
		if errors.Is(err, rule.Err) {
			return rule.Status
		}
	}
	if t.Default == 0 {
		return http.StatusInternalServerError
	}
	return t.Default
}
