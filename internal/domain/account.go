package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Account is a single-branch ledger for one account: an insertion-ordered
// transaction sequence it owns exclusively. It performs no validation of
// its own; posting rules are the caller's responsibility.
type Account struct {
	ID           string
	transactions []Transaction
}

func NewAccount(id string) *Account {
	return &Account{ID: id}
}

func (a *Account) AddTransaction(txn Transaction) {
	a.transactions = append(a.transactions, txn)
}

// Transactions returns a copy of the transaction sequence in insertion
// order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// BalanceAsOf sums every transaction dated on or before date. The sum is
// commutative, so the result does not depend on insertion order, and a
// transaction posted on date itself is already reflected.
func (a *Account) BalanceAsOf(date civil.Date) Money {
	balance := decimal.Zero
	for _, txn := range a.transactions {
		if !txn.Date.After(date) {
			balance = balance.Add(txn.Signed())
		}
	}
	return NewMoney(balance)
}

func (a *Account) CanWithdraw(amount Money, date civil.Date) bool {
	return a.BalanceAsOf(date).GreaterThanOrEqual(amount)
}
