package dto

import (
	"time"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse is the API representation of a ledger audit record.
type TransactionResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Date:        txn.Date,
		Description: txn.Description,
		Status:      string(txn.Status),
	}
}

func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToTransactionResponse(&txns[i]))
	}
	return out
}
