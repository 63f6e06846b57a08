package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger audit record.
type TransactionType string

const (
	TxnDeposit    TransactionType = "deposit"
	TxnWithdrawal TransactionType = "withdrawal"
	TxnLoan       TransactionType = "loan"
	TxnRepayment  TransactionType = "repayment"
	TxnInterest   TransactionType = "interest"
)

// TransactionStatus marks completion of a transaction. The engine only ever
// writes completed; pending and failed round-trip through seeds and the
// remote contract.
type TransactionStatus string

const (
	TxnCompleted TransactionStatus = "completed"
	TxnPending   TransactionStatus = "pending"
	TxnFailed    TransactionStatus = "failed"
)

// Transaction is an append-only audit record created as a side effect of
// deposit and loan operations. It is never updated or deleted.
type Transaction struct {
	TransactionID string            `json:"id"`
	UserID        string            `json:"userId"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Date          time.Time         `json:"date"`
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`
}
