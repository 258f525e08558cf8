package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "D"
	KindWithdrawal TransactionKind = "W"
	KindInterest   TransactionKind = "I"
)

// Transaction is a posted ledger entry. Immutable after creation. ID is
// empty for interest entries, which are system-posted and never consume a
// per-date sequence number.
type Transaction struct {
	ID        string
	Date      civil.Date
	AccountID string
	Kind      TransactionKind
	Amount    Money
}

// Signed returns the entry's contribution to a balance: deposits and
// interest add, withdrawals subtract.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.Amount.Decimal().Neg()
	}
	return t.Amount.Decimal()
}

// FormatDate renders a calendar date in the ledger's 8-digit wire form.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}
