package storage

import "github.com/demobank/fraudcall/internal/model"

// SeedCases returns the demo case set written to a fresh store. The two
// identities, transactions, and security questions are fixed; only the
// ids differ between seedings.
func SeedCases() []model.FraudCase {
	return []model.FraudCase{
		{
			ID:                  model.NewCaseID(),
			UserName:            "John",
			SecurityIdentifier:  "12345",
			CardEnding:          "4242",
			TransactionAmount:   129.99,
			TransactionCurrency: "USD",
			TransactionName:     "ABC Industry",
			TransactionCategory: "e-commerce",
			TransactionSource:   "alibaba.com",
			TransactionLocation: "San Francisco, USA",
			TransactionTime:     "2025-11-25 14:32",
			SecurityQuestion:    "What is your favorite color?",
			SecurityAnswer:      "blue",
			Status:              model.StatusPendingReview,
		},
		{
			ID:                  model.NewCaseID(),
			UserName:            "Sara",
			SecurityIdentifier:  "98765",
			CardEnding:          "8812",
			TransactionAmount:   520.0,
			TransactionCurrency: "USD",
			TransactionName:     "TravelNow Flights",
			TransactionCategory: "travel",
			TransactionSource:   "travelnow.com",
			TransactionLocation: "New York, USA",
			TransactionTime:     "2025-11-24 09:10",
			SecurityQuestion:    "What city were you born in?",
			SecurityAnswer:      "mumbai",
			Status:              model.StatusPendingReview,
		},
	}
}
