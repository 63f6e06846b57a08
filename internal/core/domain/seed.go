package domain

// SeedBundle is the full replacement state for one session's ledger
// collections. Reseeding a user replaces all four collections with the
// bundle, never merges.
type SeedBundle struct {
	Deposits      []Deposit
	Loans         []Loan
	Transactions  []Transaction
	Notifications []Notification
}
