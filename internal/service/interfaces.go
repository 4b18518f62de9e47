// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/demobank/fraudcall/internal/model"
)

// CaseStore defines the contract for fraud case persistence.
//
// The store holds one ordered collection of cases which is read in full
// at call start and rewritten in full on each update. Implementations
// must seed the store with sample data when it is missing or empty, and
// must degrade to an in-memory seed set on read failure rather than
// failing the call.
type CaseStore interface {
	// Load reads the entire ordered case collection. A missing store is
	// created and seeded; an unreadable one falls back to the seed set
	// in memory without mutating the store.
	Load(ctx context.Context) ([]model.FraudCase, error)

	// Save rewrites the full collection, replacing prior content.
	// Callers at the dialogue layer treat failure as at-most-effort:
	// logged, never retried, never fatal to the call.
	Save(ctx context.Context, cases []model.FraudCase) error

	// Close releases any resources held by the store.
	Close() error
}

// Speaker is the speech platform collaborator. The dialogue core only
// ever produces text for it; audio transport, synthesis, and turn
// detection remain the platform's concern.
type Speaker interface {
	Speak(text string, allowInterruptions bool) error
}
