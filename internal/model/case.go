// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// CaseStatus indicates the disposition of a fraud case.
type CaseStatus string

// Case status constants.
const (
	StatusPendingReview      CaseStatus = "pending_review"
	StatusConfirmedSafe      CaseStatus = "confirmed_safe"
	StatusConfirmedFraud     CaseStatus = "confirmed_fraud"
	StatusVerificationFailed CaseStatus = "verification_failed"
)

// IsTerminal reports whether the status is a final disposition.
// A terminal case is never revisited within the same call.
func (s CaseStatus) IsTerminal() bool {
	switch s {
	case StatusConfirmedSafe, StatusConfirmedFraud, StatusVerificationFailed:
		return true
	case StatusPendingReview:
		return false
	}
	return false
}

// FraudCase represents one suspicious-transaction record tracked through
// a verification call. Field names match the on-disk JSON store layout.
type FraudCase struct {
	ID                  string     `json:"id"`
	UserName            string     `json:"userName"`
	SecurityIdentifier  string     `json:"securityIdentifier"`
	CardEnding          string     `json:"cardEnding"`
	TransactionAmount   float64    `json:"transactionAmount"`
	TransactionCurrency string     `json:"transactionCurrency"`
	TransactionName     string     `json:"transactionName"`
	TransactionCategory string     `json:"transactionCategory"`
	TransactionSource   string     `json:"transactionSource"`
	TransactionLocation string     `json:"transactionLocation"`
	TransactionTime     string     `json:"transactionTime"`
	SecurityQuestion    string     `json:"securityQuestion"`
	SecurityAnswer      string     `json:"securityAnswer"`
	Status              CaseStatus `json:"status"`
	OutcomeNote         string     `json:"outcomeNote"`
}

// NewCaseID generates a unique identifier for a new fraud case.
// IDs are assigned once at creation and never change.
func NewCaseID() string {
	return uuid.NewString()
}

// MatchesAnswer checks a caller's reply against the stored security
// answer. The comparison is a case-insensitive substring match so that
// "it's blue" satisfies a stored answer of "blue". An empty stored
// answer never matches.
func (c *FraudCase) MatchesAnswer(given string) bool {
	expected := strings.ToLower(strings.TrimSpace(c.SecurityAnswer))
	if expected == "" {
		return false
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(given)), expected)
}

// FindCaseByName looks up a case by customer name. The match is
// case-insensitive and whitespace-trimmed; the first match in
// collection order wins. A nil return is a normal outcome, not an error.
func FindCaseByName(cases []FraudCase, name string) *FraudCase {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range cases {
		if strings.ToLower(strings.TrimSpace(cases[i].UserName)) == name {
			return &cases[i]
		}
	}
	return nil
}

// ReplaceCase returns a new collection with the record whose ID matches
// updated replaced in place. All other records are unchanged and keep
// their original order. An unknown ID leaves the collection untouched.
func ReplaceCase(cases []FraudCase, updated FraudCase) []FraudCase {
	result := make([]FraudCase, len(cases))
	for i, c := range cases {
		if c.ID == updated.ID {
			result[i] = updated
		} else {
			result[i] = c
		}
	}
	return result
}
