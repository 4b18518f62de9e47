// Package storage provides the case persistence layer for the application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/demobank/fraudcall/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrNilCases    = errors.New("cases cannot be nil")
	ErrInvalidCase = errors.New("invalid fraud case")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCases validates a case collection before it is persisted.
// An empty collection is valid; a nil one is a programming error.
func validateCases(cases []model.FraudCase) error {
	if cases == nil {
		return ErrNilCases
	}

	seen := make(map[string]struct{}, len(cases))
	for i, c := range cases {
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("%w: case at index %d has no id", ErrInvalidCase, i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidCase, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
