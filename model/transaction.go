package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	Deposit          TransactionType = "Deposit"
	Withdrawal       TransactionType = "Withdrawal"
	TransferSent     TransactionType = "Transfer Sent"
	TransferReceived TransactionType = "Transfer Received"
	InterestCredit   TransactionType = "Interest Credit"
)

// Transaction is an immutable record of a balance-affecting event. Amount is
// signed (debits negative, credits positive) and Balance is the account
// balance after the event was applied.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Balance       float64         `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GenerateUUIDWithSuffix generates a UUID with a given module name as a prefix.
// This is useful for creating unique identifiers with context-specific prefixes.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}
